// Package seed loads the fixture records each collection starts with.
package seed

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/spec-kit/backoffice/internal/domain"
)

//go:embed fixtures.toml
var defaultFixtures string

// Fixtures holds the initial records of every collection, in list order.
type Fixtures struct {
	Users         []domain.User         `toml:"users"`
	Employees     []domain.Employee     `toml:"employees"`
	Content       []domain.Content      `toml:"content"`
	Payments      []domain.Payment      `toml:"payments"`
	Inquiries     []domain.Inquiry      `toml:"inquiries"`
	Notifications []domain.Notification `toml:"notifications"`
	Permissions   []domain.AdminAccount `toml:"permissions"`
	Settings      []domain.Setting      `toml:"settings"`
}

// Default returns the bundled demo data.
func Default() (Fixtures, error) {
	return Parse(defaultFixtures)
}

// Parse decodes fixtures from TOML text. Unknown keys are rejected.
func Parse(text string) (Fixtures, error) {
	var f Fixtures
	md, err := toml.Decode(text, &f)
	if err != nil {
		return Fixtures{}, fmt.Errorf("decode fixtures: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Fixtures{}, fmt.Errorf("decode fixtures: unknown key %s", undecoded[0])
	}
	return f, nil
}

// Load reads fixtures from path, falling back to the bundled data when
// path is empty.
func Load(path string) (Fixtures, error) {
	if path == "" {
		return Default()
	}
	var f Fixtures
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return Fixtures{}, fmt.Errorf("decode fixtures %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Fixtures{}, fmt.Errorf("decode fixtures %s: unknown key %s", path, undecoded[0])
	}
	return f, nil
}
