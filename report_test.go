package spiral

import "testing"

func TestReportString(t *testing.T) {
	rprt := Report{Target: "Mars", Reached: true, FinalRadius: 2.27392e8, FinalMass: 9382.96, TravelYears: 3.84211}
	exp := "Reached Mars: Yes\nFinal radius: 2.27392e+08 km\nFinal mass: 9382.96 kg\nTravel time: 3.84211 years"
	if rprt.String() != exp {
		t.Fatalf("report reads:\n%s", rprt)
	}
	rprt = Report{Target: "nowhere", Reached: false, FinalRadius: 1.496e8, FinalMass: 100, TravelYears: 0.0273973}
	exp = "Reached nowhere: No\nFinal radius: 1.496e+08 km\nFinal mass: 100 kg\nTravel time: 0.0273973 years"
	if rprt.String() != exp {
		t.Fatalf("report reads:\n%s", rprt)
	}
}
