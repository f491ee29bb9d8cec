package profile

import (
	"testing"
)

func TestLoadBuiltinAll(t *testing.T) {
	names, err := List()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) == 0 {
		t.Fatal("no built-in profiles found")
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			p, err := LoadBuiltin(name)
			if err != nil {
				t.Fatal(err)
			}
			if p.Name != name {
				t.Errorf("profile name %q does not match file name %q", p.Name, name)
			}
			if p.Description == "" {
				t.Error("profile has no description")
			}
			if p.Trials <= 0 {
				t.Errorf("trials = %d, want > 0", p.Trials)
			}
			for op, b := range map[string]*Bounds{
				"addition":       p.Addition,
				"subtraction":    p.Subtraction,
				"multiplication": p.Multiplication,
			} {
				if b == nil {
					t.Errorf("%s bounds missing", op)
					continue
				}
				if b.QMin > b.QMax {
					t.Errorf("%s: q_min %v > q_max %v", op, b.QMin, b.QMax)
				}
				if b.QMin < 0 {
					t.Errorf("%s: q_min %v is negative", op, b.QMin)
				}
				if b.MinOperand < 0 || b.MinOperand > b.MaxOperand {
					t.Errorf("%s: bad operand range [%d, %d]", op, b.MinOperand, b.MaxOperand)
				}
			}
		})
	}
}

func TestLoadBuiltinUnknown(t *testing.T) {
	if _, err := LoadBuiltin("nope"); err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestListContainsDefaults(t *testing.T) {
	names, err := List()
	if err != nil {
		t.Fatal(err)
	}
	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	for _, want := range []string{"warmup", "practice", "challenge"} {
		if !found[want] {
			t.Errorf("built-in profile %q missing from List()", want)
		}
	}
}
