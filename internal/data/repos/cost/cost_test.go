package cost

import (
	"context"
	"testing"

	"github.com/yungbote/orbital-nexus-backend/internal/data/repos/testutil"
	types "github.com/yungbote/orbital-nexus-backend/internal/domain/cost"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/dbctx"
)

func TestCostComponentRepoListForMission(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewCostComponentRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	created, err := repo.Create(dbc, []*types.CostComponent{
		{ComponentName: "Bus", ComponentCategory: "MANUFACTURING", BaseCostUSD: 1e6, CostScalingFactor: 0.9, ApplicableMissionTypes: types.StringList("Communications")},
		{ComponentName: "Ride", ComponentCategory: "LAUNCH", BaseCostUSD: 5e6, CostScalingFactor: 1, ApplicableMissionTypes: types.StringList("Communications", "Earth Observation")},
		{ComponentName: "Imager", ComponentCategory: "DEVELOPMENT", BaseCostUSD: 2e6, CostScalingFactor: 1, ApplicableMissionTypes: types.StringList("Earth Observation")},
		{ComponentName: "Orphan", ComponentCategory: "REGULATORY", BaseCostUSD: 1e5, CostScalingFactor: 1},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 4 {
		t.Fatalf("Create: want=4 got=%d", len(created))
	}

	all, err := repo.ListForMission(dbc, "Communications", nil)
	if err != nil {
		t.Fatalf("ListForMission: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("ListForMission(all): want=2 got=%d", len(all))
	}

	launchOnly, err := repo.ListForMission(dbc, "Communications", []string{"launch"})
	if err != nil {
		t.Fatalf("ListForMission(launch): %v", err)
	}
	if len(launchOnly) != 1 || launchOnly[0].ComponentName != "Ride" {
		t.Fatalf("ListForMission(launch): got=%+v", launchOnly)
	}

	listed, err := repo.List(dbc)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"Imager", "Ride", "Bus", "Orphan"}
	for i, name := range want {
		if listed[i].ComponentName != name {
			t.Fatalf("List order[%d]: want=%s got=%s", i, name, listed[i].ComponentName)
		}
	}
}

func TestInsuranceModelRepoFindCheapestMatch(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewInsuranceModelRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	min10, max100 := 10e6, 100e6
	_, err := repo.Create(dbc, []*types.InsuranceModel{
		{ModelName: "standard", CoverageType: types.CoverageLaunch, BasePremiumRate: 0.08, CoverageAmountUSD: 1e8, ActiveStatus: true, MinimumSatelliteValueUSD: &min10, MaximumSatelliteValueUSD: &max100},
		{ModelName: "budget", CoverageType: types.CoverageLaunch, BasePremiumRate: 0.05, CoverageAmountUSD: 5e7, ActiveStatus: true, MinimumSatelliteValueUSD: &min10, MaximumSatelliteValueUSD: &max100},
		{ModelName: "retired", CoverageType: types.CoverageLaunch, BasePremiumRate: 0.01, CoverageAmountUSD: 5e7, ActiveStatus: false},
		{ModelName: "open", CoverageType: types.CoverageInOrbitLife, BasePremiumRate: 0.03, CoverageAmountUSD: 5e7, ActiveStatus: true},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.FindCheapestMatch(dbc, types.CoverageLaunch, 50e6)
	if err != nil {
		t.Fatalf("FindCheapestMatch: %v", err)
	}
	if got == nil || got.ModelName != "budget" {
		t.Fatalf("FindCheapestMatch: want=budget got=%+v", got)
	}

	none, err := repo.FindCheapestMatch(dbc, types.CoverageLaunch, 500e6)
	if err != nil {
		t.Fatalf("FindCheapestMatch(out of bounds): %v", err)
	}
	if none != nil {
		t.Fatalf("FindCheapestMatch(out of bounds): want nil got=%+v", none)
	}

	open, err := repo.FindCheapestMatch(dbc, types.CoverageInOrbitLife, 1e11)
	if err != nil || open == nil || open.ModelName != "open" {
		t.Fatalf("FindCheapestMatch(open bounds): %v %+v", err, open)
	}
}
