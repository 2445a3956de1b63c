package daycare

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"present", StatusPresent},
		{"Present", StatusPresent},
		{" ABSENT ", StatusAbsent},
		{"all", StatusAll},
		{"", StatusAll},
		{"bogus", StatusAll},
	}

	for _, tt := range tests {
		if got := ParseStatus(tt.in); got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStatusToggled(t *testing.T) {
	if got := StatusPresent.Toggled(); got != StatusAbsent {
		t.Errorf("StatusPresent.Toggled() = %q, want %q", got, StatusAbsent)
	}
	if got := StatusAbsent.Toggled(); got != StatusPresent {
		t.Errorf("StatusAbsent.Toggled() = %q, want %q", got, StatusPresent)
	}
	// The wildcard must never survive a toggle.
	if got := StatusAll.Toggled(); got != StatusPresent {
		t.Errorf("StatusAll.Toggled() = %q, want %q", got, StatusPresent)
	}
}

func TestDogBaseStatus(t *testing.T) {
	if got := (Dog{Present: true}).BaseStatus(); got != StatusPresent {
		t.Errorf("BaseStatus() = %q, want %q", got, StatusPresent)
	}
	if got := (Dog{Present: false}).BaseStatus(); got != StatusAbsent {
		t.Errorf("BaseStatus() = %q, want %q", got, StatusAbsent)
	}
}

func TestDogFallbacks(t *testing.T) {
	var empty Dog
	if got := empty.DisplayName(); got != "Unnamed" {
		t.Errorf("DisplayName() = %q, want Unnamed", got)
	}
	if got := empty.OwnerName(); got != "Unknown owner" {
		t.Errorf("OwnerName() = %q, want Unknown owner", got)
	}
	if got := empty.ImageURL(); got == "" {
		t.Error("ImageURL() = \"\", want placeholder")
	}

	dog := Dog{
		Name:  " Rex ",
		Img:   "https://example.com/rex.jpg",
		Owner: Owner{Name: "Ada", LastName: "Lovelace"},
	}
	if got := dog.DisplayName(); got != "Rex" {
		t.Errorf("DisplayName() = %q, want Rex", got)
	}
	if got := dog.OwnerName(); got != "Ada Lovelace" {
		t.Errorf("OwnerName() = %q, want Ada Lovelace", got)
	}
	if got := dog.ImageURL(); got != "https://example.com/rex.jpg" {
		t.Errorf("ImageURL() = %q, want the record's URL", got)
	}

	firstOnly := Dog{Owner: Owner{Name: "Ada"}}
	if got := firstOnly.OwnerName(); got != "Ada" {
		t.Errorf("OwnerName() = %q, want Ada", got)
	}
}
