package generate

import (
	"strings"

	"datasynth/internal/dataset"
)

var genders = []string{"Male", "Female", "Other"}

// personalTable builds customer records: identity, contact, and
// demographic fields.
func (g *Generator) personalTable(count int) *dataset.Table {
	t := dataset.New("personal",
		"id", "first_name", "last_name", "email", "phone", "address",
		"city", "state", "zip_code", "birth_date", "gender", "occupation",
		"salary", "created_at")

	now := g.anchor
	for i := 0; i < count; i++ {
		addr := g.fake.Address()
		t.Append(
			g.uuid(),
			g.fake.FirstName(),
			g.fake.LastName(),
			g.fake.Email(),
			g.fake.Phone(),
			strings.ReplaceAll(addr.Address, "\n", ", "),
			addr.City,
			addr.State,
			addr.Zip,
			g.fake.DateRange(now.AddDate(-80, 0, 0), now.AddDate(-18, 0, 0)).Format("2006-01-02"),
			g.pick(genders),
			g.fake.JobTitle(),
			30000+g.rng.Intn(120001),
			g.fake.DateRange(now.AddDate(-2, 0, 0), now),
		)
	}
	return t
}
