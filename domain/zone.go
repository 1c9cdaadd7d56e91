package domain

import (
	"sort"
	"strings"
)

type Zone string

// Zones is the allow-list of zone names a session may join.
type Zones map[Zone]struct{}

func NewZones(names []string) Zones {
	zones := make(Zones, len(names))
	for _, name := range names {
		name = strings.TrimSpace(strings.ToLower(name))
		if name == "" {
			continue
		}
		zones[Zone(name)] = struct{}{}
	}
	return zones
}

func (z Zones) Allowed(zone Zone) bool {
	_, ok := z[zone]
	return ok
}

func (z Zones) List() []Zone {
	res := make([]Zone, 0, len(z))
	for zone := range z {
		res = append(res, zone)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}
