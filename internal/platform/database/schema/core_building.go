// Copyright (c) 2026 Arch.krd. All rights reserved.

package schema

// BuildingTable describes the core.building table.
type BuildingTable struct {
	Name string

	ID                     string
	Slug                   string
	TitleEn                string
	TitleKu                string
	AlternateNamesEn       string
	AlternateNamesKu       string
	LocationEn             string
	LocationKu             string
	OverviewEn             string
	OverviewKu             string
	ArchitecturalDetailsEn string
	ArchitecturalDetailsKu string
	HistoricalPeriodsEn    string
	HistoricalPeriodsKu    string
	ArchitectEn            string
	ArchitectKu            string
	Latitude               string
	Longitude              string
	Period                 string
	Status                 string
	ConstructionYear       string
	RenovationYears        string
	EraID                  string
	RegionID               string
	BuildingTypeID         string
	CreatedAt              string
	UpdatedAt              string
}

// Building is the singleton descriptor for core.building.
var Building = BuildingTable{
	Name: "core.building",

	ID:                     "id",
	Slug:                   "slug",
	TitleEn:                "titleen",
	TitleKu:                "titleku",
	AlternateNamesEn:       "alternatenamesen",
	AlternateNamesKu:       "alternatenamesku",
	LocationEn:             "locationen",
	LocationKu:             "locationku",
	OverviewEn:             "overviewen",
	OverviewKu:             "overviewku",
	ArchitecturalDetailsEn: "architecturaldetailsen",
	ArchitecturalDetailsKu: "architecturaldetailsku",
	HistoricalPeriodsEn:    "historicalperiodsen",
	HistoricalPeriodsKu:    "historicalperiodsku",
	ArchitectEn:            "architecten",
	ArchitectKu:            "architectku",
	Latitude:               "latitude",
	Longitude:              "longitude",
	Period:                 "period",
	Status:                 "status",
	ConstructionYear:       "constructionyear",
	RenovationYears:        "renovationyears",
	EraID:                  "eraid",
	RegionID:               "regionid",
	BuildingTypeID:         "buildingtypeid",
	CreatedAt:              "createdat",
	UpdatedAt:              "updatedat",
}

// Columns returns every column in declaration order.
func (t BuildingTable) Columns() []string {
	return []string{
		t.ID, t.Slug,
		t.TitleEn, t.TitleKu,
		t.AlternateNamesEn, t.AlternateNamesKu,
		t.LocationEn, t.LocationKu,
		t.OverviewEn, t.OverviewKu,
		t.ArchitecturalDetailsEn, t.ArchitecturalDetailsKu,
		t.HistoricalPeriodsEn, t.HistoricalPeriodsKu,
		t.ArchitectEn, t.ArchitectKu,
		t.Latitude, t.Longitude,
		t.Period, t.Status,
		t.ConstructionYear, t.RenovationYears,
		t.EraID, t.RegionID, t.BuildingTypeID,
		t.CreatedAt, t.UpdatedAt,
	}
}
