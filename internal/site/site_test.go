package site

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		hint   string
		want   ID
		wantOK bool
	}{
		{name: "empty defaults to amare", hint: "", want: Amare, wantOK: true},
		{name: "whitespace defaults to amare", hint: "   ", want: Amare, wantOK: true},
		{name: "amare", hint: "amare", want: Amare, wantOK: true},
		{name: "adapticus", hint: "adapticus", want: Adapticus, wantOK: true},
		{name: "uppercase adapticus", hint: "ADAPTICUS", want: Adapticus, wantOK: true},
		{name: "mixed case amare", hint: "AmArE", want: Amare, wantOK: true},
		{name: "unknown site rejected", hint: "atlantis", want: "", wantOK: false},
		{name: "near miss rejected", hint: "amares", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.hint)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)",
					tt.hint, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestValid(t *testing.T) {
	if !Valid(Amare) || !Valid(Adapticus) {
		t.Error("expected both supported sites to be valid")
	}
	if Valid(ID("atlantis")) {
		t.Error("unknown site should not be valid")
	}
	if Valid(ID("")) {
		t.Error("empty site should not be valid")
	}
}
