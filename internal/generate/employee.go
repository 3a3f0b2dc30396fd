package generate

import (
	"fmt"
	"math"
	"strings"

	"datasynth/internal/dataset"
)

var (
	departments = []string{"Engineering", "Marketing", "Sales", "HR", "Finance", "Operations"}
	positions   = []string{"Manager", "Senior", "Junior", "Lead", "Director", "Analyst"}
)

// employeeTable builds HR records with EMP-prefixed identifiers and
// company-style email addresses.
func (g *Generator) employeeTable(count int) *dataset.Table {
	t := dataset.New("employee",
		"employee_id", "first_name", "last_name", "email", "department",
		"position", "hire_date", "salary", "manager_id",
		"performance_rating", "years_experience", "remote_work",
		"bonus_eligible")

	now := g.anchor
	for i := 0; i < count; i++ {
		first := g.fake.FirstName()
		last := g.fake.LastName()
		dept := g.pick(departments)
		t.Append(
			fmt.Sprintf("EMP%d", 1000+g.rng.Intn(9000)),
			first,
			last,
			fmt.Sprintf("%s.%s@%s", strings.ToLower(first), strings.ToLower(last), g.fake.DomainName()),
			dept,
			fmt.Sprintf("%s %s", g.pick(positions), strings.TrimSuffix(dept, "s")),
			g.fake.DateRange(now.AddDate(-5, 0, 0), now).Format("2006-01-02"),
			40000+g.rng.Intn(160001),
			fmt.Sprintf("EMP%d", 1000+g.rng.Intn(9000)),
			math.Round((2.5+g.rng.Float64()*2.5)*10)/10,
			1+g.rng.Intn(20),
			g.rng.Intn(2) == 0,
			g.rng.Intn(2) == 0,
		)
	}
	return t
}
