package reference

import (
	"fmt"
	"strings"
)

// SupplyRegion is a major production hub for a commodity
type SupplyRegion struct {
	Region string  `json:"region"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Output string  `json:"output"`
	Risk   string  `json:"risk"`
}

// Signal is the traffic-light colour shown next to a sector status
type Signal string

const (
	SignalRed    Signal = "red"
	SignalOrange Signal = "orange"
	SignalYellow Signal = "yellow"
	SignalGreen  Signal = "green"
	SignalWhite  Signal = "white"
)

// SectorInsight describes how one consuming sector is affected by a commodity
type SectorInsight struct {
	Sector   string `json:"sector"`
	Share    int    `json:"share_pct"`
	Signal   Signal `json:"signal"`
	Status   string `json:"status"`
	Dynamics string `json:"dynamics"`
}

// FactSheet is curated background on a commodity
type FactSheet struct {
	Origin      string `json:"origin"`
	Producers   string `json:"producers"`
	Uses        string `json:"uses"`
	Description string `json:"description"`
}

// Profile bundles all reference data for one commodity
type Profile struct {
	Commodity string          `json:"commodity"`
	Regions   []SupplyRegion  `json:"regions"`
	Sectors   []SectorInsight `json:"sectors"`
	Facts     FactSheet       `json:"facts"`
}

var presets = []string{
	"Hazelnuts", "Cocoa", "Avocados", "Coffee", "Wheat",
	"Corn", "Soybeans", "Palm Oil", "Cotton", "Sugar",
}

// Presets returns the commodities offered in the selector
func Presets() []string {
	out := make([]string, len(presets))
	copy(out, presets)
	return out
}

// Catalog serves the static reference data
type Catalog struct {
	regions map[string][]SupplyRegion
	sectors map[string][]SectorInsight
	facts   map[string]FactSheet
}

// NewCatalog creates a catalog over the built-in data set
func NewCatalog() *Catalog {
	return &Catalog{
		regions: supplyRegions,
		sectors: sectorInsights,
		facts:   factSheets,
	}
}

// Canonical maps a case-insensitive commodity name to its catalog spelling.
// Unknown names are returned trimmed.
func (c *Catalog) Canonical(name string) string {
	name = strings.TrimSpace(name)
	for _, p := range presets {
		if strings.EqualFold(p, name) {
			return p
		}
	}
	return name
}

// SupplyRegions returns the production hubs for a commodity; unknown commodities have none
func (c *Catalog) SupplyRegions(commodity string) []SupplyRegion {
	regions := c.regions[c.Canonical(commodity)]
	out := make([]SupplyRegion, len(regions))
	copy(out, regions)
	return out
}

// SectorInsights returns the sector breakdown, defaulting to a balanced general market
func (c *Catalog) SectorInsights(commodity string) []SectorInsight {
	sectors, ok := c.sectors[c.Canonical(commodity)]
	if !ok {
		sectors = defaultSectors
	}
	out := make([]SectorInsight, len(sectors))
	copy(out, sectors)
	return out
}

// Facts returns the fact sheet, or a generic one for unknown commodities
func (c *Catalog) Facts(commodity string) FactSheet {
	commodity = c.Canonical(commodity)
	if facts, ok := c.facts[commodity]; ok {
		return facts
	}
	return FactSheet{
		Origin:      "Global.",
		Producers:   "Varies by specific type.",
		Uses:        "Food, industrial applications.",
		Description: fmt.Sprintf("%s is a widely traded global commodity.", commodity),
	}
}

// Profile returns every reference view of a commodity
func (c *Catalog) Profile(commodity string) Profile {
	return Profile{
		Commodity: c.Canonical(commodity),
		Regions:   c.SupplyRegions(commodity),
		Sectors:   c.SectorInsights(commodity),
		Facts:     c.Facts(commodity),
	}
}
