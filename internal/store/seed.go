package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Abdelrhman012/parking-reservations-system/internal/domain"
)

// Open loads the dataset from a JSON seed file. Subscriptions carrying the
// legacy scalar category field are folded into the categories list, and
// basic referential checks run before the store is handed out.
func Open(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	data := &Data{}
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for _, s := range data.Subscriptions {
		s.Normalize()
	}

	if err := validate(data); err != nil {
		return nil, fmt.Errorf("invalid seed data: %w", err)
	}

	return &Store{data: data}, nil
}

func validate(data *Data) error {
	categories := make(map[string]bool, len(data.Categories))
	for _, c := range data.Categories {
		if categories[c.ID] {
			return fmt.Errorf("duplicate category id %q", c.ID)
		}
		if c.RateNormal < 0 || c.RateSpecial < 0 {
			return fmt.Errorf("category %q has negative rate", c.ID)
		}
		categories[c.ID] = true
	}

	zones := make(map[string]bool, len(data.Zones))
	for _, z := range data.Zones {
		if zones[z.ID] {
			return fmt.Errorf("duplicate zone id %q", z.ID)
		}
		if !categories[z.CategoryID] {
			return fmt.Errorf("zone %q references unknown category %q", z.ID, z.CategoryID)
		}
		if z.TotalSlots < 0 {
			return fmt.Errorf("zone %q has negative totalSlots", z.ID)
		}
		zones[z.ID] = true
	}

	gates := make(map[string]bool, len(data.Gates))
	for _, g := range data.Gates {
		if gates[g.ID] {
			return fmt.Errorf("duplicate gate id %q", g.ID)
		}
		for _, zid := range g.ZoneIDs {
			if !zones[zid] {
				return fmt.Errorf("gate %q references unknown zone %q", g.ID, zid)
			}
		}
		gates[g.ID] = true
	}

	for _, s := range data.Subscriptions {
		for _, cid := range s.Categories {
			if !categories[cid] {
				return fmt.Errorf("subscription %q references unknown category %q", s.ID, cid)
			}
		}
	}

	for _, t := range data.Tickets {
		if !t.Type.IsValid() {
			return fmt.Errorf("ticket %q has invalid type %q", t.ID, t.Type)
		}
		if !zones[t.ZoneID] {
			return fmt.Errorf("ticket %q references unknown zone %q", t.ID, t.ZoneID)
		}
	}

	for _, u := range data.Users {
		if u.Role != domain.RoleAdmin && u.Role != domain.RoleEmployee {
			return fmt.Errorf("user %q has invalid role %q", u.ID, u.Role)
		}
	}

	return nil
}
