package registry

import (
	"encoding/json"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		raw    string
		want   int64
		wantOK bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"-7", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseID(tt.raw)
		if tt.wantOK {
			if err != nil {
				t.Errorf("ParseID(%q): unexpected error %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseID(%q) = %d, want %d", tt.raw, got, tt.want)
			}
			continue
		}
		if !IsInvalidArgument(err) {
			t.Errorf("ParseID(%q): expected invalid argument, got %v", tt.raw, err)
		}
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("Ana"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, nome := range []string{"", "   ", "\t\n"} {
		if err := ValidateName(nome); !IsInvalidArgument(err) {
			t.Errorf("ValidateName(%q): expected invalid argument, got %v", nome, err)
		}
	}
}

func TestValidateAge(t *testing.T) {
	if err := ValidateAge(1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, idade := range []int{0, -1, -30} {
		if err := ValidateAge(idade); !IsInvalidArgument(err) {
			t.Errorf("ValidateAge(%d): expected invalid argument, got %v", idade, err)
		}
	}
}

func TestValidateCPF(t *testing.T) {
	valid := []string{"123.456.789-00", "000.000.000-00"}
	for _, cpf := range valid {
		if err := ValidateCPF(cpf); err != nil {
			t.Errorf("ValidateCPF(%q): unexpected error %v", cpf, err)
		}
	}
	invalid := []string{
		"",
		"12345678900",
		"123.456.789-0",
		"123.456.789-000",
		"123-456-789.00",
		"abc.def.ghi-jk",
		" 123.456.789-00",
		"123.456.789-00 ",
	}
	for _, cpf := range invalid {
		if err := ValidateCPF(cpf); !IsInvalidArgument(err) {
			t.Errorf("ValidateCPF(%q): expected invalid argument, got %v", cpf, err)
		}
	}
}

func TestValidateCRM(t *testing.T) {
	for _, crm := range []string{"1", "12345", "0009"} {
		if err := ValidateCRM(crm); err != nil {
			t.Errorf("ValidateCRM(%q): unexpected error %v", crm, err)
		}
	}
	for _, crm := range []string{"", "12a45", "12 45", "-123", "12.3"} {
		if err := ValidateCRM(crm); !IsInvalidArgument(err) {
			t.Errorf("ValidateCRM(%q): expected invalid argument, got %v", crm, err)
		}
	}
}

func TestParseDOB(t *testing.T) {
	d, err := ParseDOB("1990-05-20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "1990-05-20" {
		t.Errorf("expected 1990-05-20, got %s", d)
	}

	// Leap day on a leap year is a real date.
	if _, err := ParseDOB("2024-02-29"); err != nil {
		t.Errorf("2024-02-29 must parse, got %v", err)
	}

	invalid := []string{
		"2024-02-30", // well-formed but not a real date
		"2023-02-29", // not a leap year
		"1990-13-01",
		"1990-00-10",
		"20-05-1990",
		"1990/05/20",
		"1990-5-2",
		"",
	}
	for _, dob := range invalid {
		_, err := ParseDOB(dob)
		if !IsInvalidArgument(err) {
			t.Errorf("ParseDOB(%q): expected invalid argument, got %v", dob, err)
		}
		if FieldOf(err) != "dob" {
			t.Errorf("ParseDOB(%q): expected failure on dob, got %q", dob, FieldOf(err))
		}
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d, _ := ParseDOB("1990-05-20")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != `"1990-05-20"` {
		t.Errorf("expected \"1990-05-20\", got %s", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.String() != "1990-05-20" {
		t.Errorf("round-trip produced %s", back)
	}
}
