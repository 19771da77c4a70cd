package registry

import (
	"fmt"
	"strings"
	"time"
)

// Schema describes one person-record collection. The same service and
// repository code serves every kind; behavioral differences (the
// doctor-only license number) live here as data.
type Schema struct {
	Kind       string // singular, used in messages: "paciente"
	Table      string // storage table / collection name
	Path       string // route segment: "pacientes"
	HasLicense bool   // kind carries a CRM license number
}

var (
	PatientSchema  = Schema{Kind: "paciente", Table: "pacientes", Path: "pacientes"}
	DoctorSchema   = Schema{Kind: "medico", Table: "medicos", Path: "medicos", HasLicense: true}
	EmployeeSchema = Schema{Kind: "funcionario", Table: "funcionarios", Path: "funcionarios"}
)

// Date is a calendar date exchanged as "YYYY-MM-DD" on the wire and
// stored without a time-of-day component.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string { return d.Format(dateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.Format(dateLayout))), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Record maps to one row of a person-record table.
type Record struct {
	ID        int64     `db:"id" json:"id"`
	Nome      string    `db:"nome" json:"nome"`
	Idade     int       `db:"idade" json:"idade"`
	CPF       string    `db:"cpf" json:"cpf"`
	CRM       *string   `db:"crm" json:"crm,omitempty"`
	DOB       Date      `db:"dob" json:"dob"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CreateInput is the raw payload for a create request. DOB and CRM stay
// strings here; the validators produce the typed values.
type CreateInput struct {
	Nome  string  `json:"nome"`
	Idade int     `json:"idade"`
	CPF   string  `json:"cpf"`
	CRM   *string `json:"crm"`
	DOB   string  `json:"dob"`
}

// UpdateInput carries an arbitrary subset of updatable fields. A nil
// pointer means the field was absent from the request.
type UpdateInput struct {
	Nome  *string `json:"nome"`
	Idade *int    `json:"idade"`
	CPF   *string `json:"cpf"`
	CRM   *string `json:"crm"`
	DOB   *string `json:"dob"`
}

// IsEmpty reports whether no field at all was supplied.
func (in UpdateInput) IsEmpty() bool {
	return in.Nome == nil && in.Idade == nil && in.CPF == nil && in.CRM == nil && in.DOB == nil
}

// Changes holds the validated fields of a partial update. Nil pointers
// are left untouched by the store.
type Changes struct {
	Nome  *string
	Idade *int
	CPF   *string
	CRM   *string
	DOB   *Date
}

// IsEmpty reports whether the update would change nothing.
func (ch Changes) IsEmpty() bool {
	return ch.Nome == nil && ch.Idade == nil && ch.CPF == nil && ch.CRM == nil && ch.DOB == nil
}
