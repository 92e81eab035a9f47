package deb822

import (
	"strings"
	"testing"

	"github.com/deb822/deb822/control"
)

// FuzzMarshalUnmarshal checks that any map record accepted by Marshal
// decodes back to the same map.
func FuzzMarshalUnmarshal(f *testing.F) {
	f.Add("Name", "bitcoin", "Summary", "Magic Internet Money")
	f.Add("A", "", "B", "x")
	f.Add("Description", "first line\nsecond line", "X", "y")

	f.Fuzz(func(t *testing.T, k1, v1, k2, v2 string) {
		if k1 == k2 {
			t.Skip()
		}
		for _, k := range []string{k1, k2} {
			if control.ValidateKey(k) != nil || strings.TrimSpace(k) != k || strings.ContainsRune(k, 0) {
				t.Skip()
			}
		}
		for _, v := range []string{v1, v2} {
			if strings.TrimSpace(v) != v || strings.ContainsRune(v, 0) {
				t.Skip()
			}
			for _, line := range strings.Split(v, "\n") {
				if strings.TrimSpace(line) != line || line == "." {
					t.Skip()
				}
			}
		}

		in := map[string]string{k1: v1, k2: v2}
		out, err := Marshal(in)
		if err != nil {
			t.Fatalf("marshal %v: %v", in, err)
		}

		var got map[string]string
		if err := Unmarshal(out, &got); err != nil {
			t.Fatalf("unmarshal %q: %v", out, err)
		}
		if len(got) != 2 || got[k1] != v1 || got[k2] != v2 {
			t.Errorf("%v round-tripped through %q to %v", in, out, got)
		}
	})
}
