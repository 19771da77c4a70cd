package registry

import (
	"context"
	"errors"
)

// Service implements the validation and consistency rules for one
// person-record collection. One instance is created per schema
// (patient, doctor, employee); all behavioral differences come from
// the schema, not from per-kind code.
type Service struct {
	schema Schema
	repo   Repository
}

func NewService(schema Schema, repo Repository) *Service {
	return &Service{schema: schema, repo: repo}
}

func (s *Service) Schema() Schema { return s.schema }

func (s *Service) List(ctx context.Context) ([]*Record, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, internal("failed to list "+s.schema.Table, err)
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Record, error) {
	if id <= 0 {
		return nil, invalidArgument("id", "id must be an integer greater than zero")
	}
	rec, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, ErrNoRecord) {
		return nil, notFound(s.schema.Kind)
	}
	if err != nil {
		return nil, internal("failed to load "+s.schema.Kind, err)
	}
	return rec, nil
}

// Create validates the payload field by field and stops at the first
// violation. Format always runs before the matching uniqueness
// pre-check, and the cpf checks run before the doctor-only crm checks,
// which run before the dob check. The pre-checks exist to produce a
// Conflict instead of a bare store error; the storage unique
// constraints remain the backstop, and losing that race surfaces as
// an internal failure.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Record, error) {
	if err := ValidateName(in.Nome); err != nil {
		return nil, err
	}
	if err := ValidateAge(in.Idade); err != nil {
		return nil, err
	}
	if err := ValidateCPF(in.CPF); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, FieldCPF, in.CPF, "cpf already registered"); err != nil {
		return nil, err
	}

	var crm *string
	if s.schema.HasLicense {
		if in.CRM == nil {
			return nil, invalidArgument("crm", "crm is required and must contain digits only")
		}
		if err := ValidateCRM(*in.CRM); err != nil {
			return nil, err
		}
		if err := s.checkUnique(ctx, FieldCRM, *in.CRM, "crm already registered"); err != nil {
			return nil, err
		}
		crm = in.CRM
	}

	dob, err := ParseDOB(in.DOB)
	if err != nil {
		return nil, err
	}

	rec := &Record{Nome: in.Nome, Idade: in.Idade, CPF: in.CPF, CRM: crm, DOB: dob}
	if err := s.repo.Insert(ctx, rec); err != nil {
		if IsUniqueViolation(err) {
			// Two concurrent creates passed the pre-check; this one
			// lost at the constraint layer.
			return nil, internal("failed to create "+s.schema.Kind+": uniqueness race lost", err)
		}
		return nil, internal("failed to create "+s.schema.Kind, err)
	}
	return rec, nil
}

// Update applies a partial update. Each supplied field is validated
// with the same rule as on create, but cpf/crm uniqueness is not
// re-checked here; only the storage constraint guards duplicates on
// the update path.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*Record, error) {
	if id <= 0 {
		return nil, invalidArgument("id", "id must be an integer greater than zero")
	}
	if in.IsEmpty() {
		return nil, invalidArgument("", "no fields to update: supply at least one of nome, idade, cpf, dob"+s.crmHint())
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, ErrNoRecord) {
			return nil, notFound(s.schema.Kind)
		}
		return nil, internal("failed to load "+s.schema.Kind, err)
	}

	var ch Changes
	if in.Nome != nil {
		if err := ValidateName(*in.Nome); err != nil {
			return nil, err
		}
		ch.Nome = in.Nome
	}
	if in.Idade != nil {
		if err := ValidateAge(*in.Idade); err != nil {
			return nil, err
		}
		ch.Idade = in.Idade
	}
	if in.CPF != nil {
		if err := ValidateCPF(*in.CPF); err != nil {
			return nil, err
		}
		ch.CPF = in.CPF
	}
	if in.CRM != nil && s.schema.HasLicense {
		if err := ValidateCRM(*in.CRM); err != nil {
			return nil, err
		}
		ch.CRM = in.CRM
	}
	if in.DOB != nil {
		dob, err := ParseDOB(*in.DOB)
		if err != nil {
			return nil, err
		}
		ch.DOB = &dob
	}

	// A body that only carried fields unknown to this kind (crm on a
	// non-doctor collection) amounts to nothing to update.
	if ch.IsEmpty() {
		return nil, invalidArgument("", "no fields to update: supply at least one of nome, idade, cpf, dob"+s.crmHint())
	}

	rec, err := s.repo.UpdatePartial(ctx, id, ch)
	if errors.Is(err, ErrNoRecord) {
		return nil, notFound(s.schema.Kind)
	}
	if err != nil {
		return nil, internal("failed to update "+s.schema.Kind, err)
	}
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return invalidArgument("id", "id must be an integer greater than zero")
	}
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, ErrNoRecord) {
		return notFound(s.schema.Kind)
	}
	if err != nil {
		return internal("failed to delete "+s.schema.Kind, err)
	}
	return nil
}

func (s *Service) checkUnique(ctx context.Context, field Field, value, msg string) error {
	_, err := s.repo.FindByField(ctx, field, value)
	if err == nil {
		return conflict(string(field), msg)
	}
	if errors.Is(err, ErrNoRecord) {
		return nil
	}
	return internal("uniqueness pre-check failed for "+string(field), err)
}

func (s *Service) crmHint() string {
	if s.schema.HasLicense {
		return ", crm"
	}
	return ""
}
