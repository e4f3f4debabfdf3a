package company

import (
	"github.com/sells-group/pipeline-cli/internal/model"
)

// Directory is an in-memory lookup table of tracked target companies keyed
// by normalized name. It is built fresh from the full company set at the
// start of each resolution pass and never incrementally maintained; a full
// rebuild-and-rematch is the supported refresh operation.
type Directory struct {
	byKey map[string]*model.Company
}

// BuildDirectory indexes every company under two candidate keys: the
// normalized name, and the normalized name with a legal suffix
// additionally stripped when one is present. When two companies collide
// on a key the first one indexed wins.
func BuildDirectory(companies []model.Company) *Directory {
	d := &Directory{byKey: make(map[string]*model.Company, len(companies)*2)}
	for i := range companies {
		c := &companies[i]
		key := Normalize(c.Name)
		if key == "" {
			continue
		}
		if _, ok := d.byKey[key]; !ok {
			d.byKey[key] = c
		}
		if stripped := StripLegalSuffix(key); stripped != key && stripped != "" {
			if _, ok := d.byKey[stripped]; !ok {
				d.byKey[stripped] = c
			}
		}
	}
	return d
}

// Lookup resolves a raw company string to a tracked company, or nil when
// no normalized key matches. The query is normalized the same way the
// index was built: exact normalized key first, then the suffix-stripped
// variant.
func (d *Directory) Lookup(raw string) *model.Company {
	key := Normalize(raw)
	if key == "" {
		return nil
	}
	if c, ok := d.byKey[key]; ok {
		return c
	}
	if stripped := StripLegalSuffix(key); stripped != key {
		if c, ok := d.byKey[stripped]; ok {
			return c
		}
	}
	return nil
}

// Len reports the number of distinct keys in the directory.
func (d *Directory) Len() int {
	return len(d.byKey)
}
