package registry

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	cpfPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	dobPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	crmPattern = regexp.MustCompile(`^\d+$`)
)

// ParseID converts a raw path parameter into a positive record id.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidArgument("id", "id must be an integer greater than zero")
	}
	return id, nil
}

// ValidateName requires a non-empty string after trimming.
func ValidateName(nome string) error {
	if strings.TrimSpace(nome) == "" {
		return invalidArgument("nome", "nome is required and must be a non-empty string")
	}
	return nil
}

// ValidateAge requires an integer strictly greater than zero.
func ValidateAge(idade int) error {
	if idade <= 0 {
		return invalidArgument("idade", "idade is required and must be an integer greater than zero")
	}
	return nil
}

// ValidateCPF checks the fixed ###.###.###-## format.
func ValidateCPF(cpf string) error {
	if !cpfPattern.MatchString(cpf) {
		return invalidArgument("cpf", "cpf must match the format XXX.XXX.XXX-XX")
	}
	return nil
}

// ValidateCRM requires a non-empty, digits-only license number.
func ValidateCRM(crm string) error {
	if !crmPattern.MatchString(crm) {
		return invalidArgument("crm", "crm is required and must contain digits only")
	}
	return nil
}

// ParseDOB checks the YYYY-MM-DD shape and then that the string is a
// real calendar date; "2024-02-30" fails the second check.
func ParseDOB(dob string) (Date, error) {
	if !dobPattern.MatchString(dob) {
		return Date{}, invalidArgument("dob", "dob must be a string in the format YYYY-MM-DD")
	}
	t, err := time.Parse(dateLayout, dob)
	if err != nil {
		return Date{}, invalidArgument("dob", "dob is not a valid calendar date")
	}
	return NewDate(t), nil
}
