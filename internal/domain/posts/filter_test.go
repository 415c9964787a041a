package posts

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"lost-found-pets/internal/geo"

	"github.com/google/go-cmp/cmp"
)

func f64(v float64) *float64 { return &v }

// latForKm devuelve la latitud a km kilómetros al norte del ecuador (lng 0).
func latForKm(km float64) float64 {
	return km / geo.EarthRadiusKm * 180 / math.Pi
}

func samplePosts() []Post {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	return []Post{
		{ID: "p1", Name: "Ty", Species: SpeciesDog, Status: StatusFound, Location: "Kmitl", LocationLat: f64(13.731), LocationLng: f64(100.778), CreatedAt: now},
		{ID: "p2", Name: "Tee", Species: SpeciesDog, Status: StatusLost, Location: "Rama 3", LocationLat: f64(13.695), LocationLng: f64(100.532), CreatedAt: now},
		{ID: "p3", Name: "Mochi", Species: SpeciesCat, Status: StatusLost, Breed: "Siamese", Description: "Blue collar", CreatedAt: now},
		{ID: "p4", Name: "Ñandú", Species: SpeciesOther, Status: StatusFound, Location: "Bang Na", CreatedAt: now},
	}
}

func ids(items []Post) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func TestVisible_DefaultFilters_ReturnsAllInOrder(t *testing.T) {
	all := samplePosts()
	got := Visible(all, DefaultFilters(), 0, nil)

	if diff := cmp.Diff(ids(all), ids(got)); diff != "" {
		t.Fatalf("unexpected listing (-want +got):\n%s", diff)
	}
}

func TestVisible_Categorical(t *testing.T) {
	all := samplePosts()

	got := Visible(all, Filters{Status: StatusFilter(StatusLost), Species: SpeciesAll}, 0, nil)
	if diff := cmp.Diff([]string{"p2", "p3"}, ids(got)); diff != "" {
		t.Fatalf("status filter (-want +got):\n%s", diff)
	}

	got = Visible(all, Filters{Status: StatusAll, Species: SpeciesFilter(SpeciesDog)}, 0, nil)
	if diff := cmp.Diff([]string{"p1", "p2"}, ids(got)); diff != "" {
		t.Fatalf("species filter (-want +got):\n%s", diff)
	}

	got = Visible(all, Filters{Status: StatusFilter(StatusFound), Species: SpeciesFilter(SpeciesCat)}, 0, nil)
	if len(got) != 0 {
		t.Fatalf("expected empty listing, got %v", ids(got))
	}
}

func TestVisible_TextQuery_CaseInsensitiveAcrossFields(t *testing.T) {
	all := samplePosts()

	cases := map[string][]string{
		"TY":       {"p1"},
		"rama":     {"p2"},
		"siamese":  {"p3"},
		"BLUE":     {"p3"},
		"ñandú":    {"p4"},
		"ÑANDÚ":    {"p4"},
		"t":        {"p1", "p2"},
		"nowhere!": {},
	}
	for q, want := range cases {
		got := Visible(all, Filters{Query: q, Status: StatusAll, Species: SpeciesAll}, 0, nil)
		if diff := cmp.Diff(want, ids(got)); diff != "" {
			t.Fatalf("query %q (-want +got):\n%s", q, diff)
		}
	}
}

func TestVisible_RadiusZero_DisablesRadiusFilter(t *testing.T) {
	user := geo.LatLng{Lat: 13.7, Lng: 100.5}
	all := []Post{
		{ID: "same", Name: "A", LocationLat: f64(13.7), LocationLng: f64(100.5)},
		{ID: "far", Name: "B", LocationLat: f64(-33.9), LocationLng: f64(18.4)},
	}

	got := Visible(all, DefaultFilters(), 0, &user)
	if diff := cmp.Diff([]string{"same", "far"}, ids(got)); diff != "" {
		t.Fatalf("radius 0 must not filter (-want +got):\n%s", diff)
	}
}

func TestVisible_RadiusBoundary(t *testing.T) {
	user := geo.LatLng{Lat: 0, Lng: 0}
	all := []Post{
		{ID: "near", Name: "A", LocationLat: f64(latForKm(4.9)), LocationLng: f64(0)},
		{ID: "far", Name: "B", LocationLat: f64(latForKm(5.1)), LocationLng: f64(0)},
		{ID: "nocoords", Name: "C"},
		{ID: "halfcoords", Name: "D", LocationLat: f64(80)},
	}

	got := Visible(all, DefaultFilters(), 5, &user)
	if diff := cmp.Diff([]string{"near", "nocoords", "halfcoords"}, ids(got)); diff != "" {
		t.Fatalf("radius 5 (-want +got):\n%s", diff)
	}
}

func TestVisible_NoUserLocation_KeepsEverything(t *testing.T) {
	all := []Post{
		{ID: "far", Name: "B", LocationLat: f64(-33.9), LocationLng: f64(18.4)},
	}
	got := Visible(all, DefaultFilters(), 5, nil)
	if len(got) != 1 {
		t.Fatalf("expected post kept without user location, got %v", ids(got))
	}
}

func TestVisible_DoesNotMutateInput(t *testing.T) {
	all := samplePosts()
	before := ids(all)
	user := geo.LatLng{Lat: 13.7, Lng: 100.5}

	_ = Visible(all, Filters{Query: "t", Status: StatusAll, Species: SpeciesAll}, 1, &user)

	if diff := cmp.Diff(before, ids(all)); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}
}

func TestVisible_AlwaysOrderPreservingSubsequence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	species := []Species{SpeciesDog, SpeciesCat, SpeciesOther}
	statuses := []Status{StatusLost, StatusFound}
	names := []string{"Ty", "Tee", "Mochi", "Peam", "Luna"}

	all := make([]Post, 0, 200)
	for i := 0; i < 200; i++ {
		p := Post{
			ID:      string(rune('a'+i%26)) + string(rune('0'+i/26)),
			Name:    names[rng.Intn(len(names))],
			Species: species[rng.Intn(len(species))],
			Status:  statuses[rng.Intn(len(statuses))],
		}
		if rng.Intn(3) > 0 {
			p.LocationLat = f64(13 + rng.Float64())
			p.LocationLng = f64(100 + rng.Float64())
		}
		all = append(all, p)
	}

	filters := []Filters{
		DefaultFilters(),
		{Query: "t", Status: StatusAll, Species: SpeciesAll},
		{Query: "", Status: StatusFilter(StatusLost), Species: SpeciesFilter(SpeciesCat)},
		{Query: "PEAM", Status: StatusFilter(StatusFound), Species: SpeciesAll},
	}
	user := geo.LatLng{Lat: 13.5, Lng: 100.5}

	for _, f := range filters {
		for _, r := range []float64{0, 10, 50} {
			got := Visible(all, f, r, &user)
			if !isSubsequence(got, all) {
				t.Fatalf("filters %+v radius %v: output is not an order-preserving subsequence", f, r)
			}
		}
	}
}

func isSubsequence(sub, all []Post) bool {
	j := 0
	for i := 0; i < len(all) && j < len(sub); i++ {
		if all[i].ID == sub[j].ID {
			j++
		}
	}
	return j == len(sub)
}

func TestWithDistances(t *testing.T) {
	user := geo.LatLng{Lat: 0, Lng: 0}
	items := []Post{
		{ID: "a", LocationLat: f64(latForKm(3)), LocationLng: f64(0)},
		{ID: "b"},
	}

	got := WithDistances(items, &user)
	if len(got) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(got))
	}
	if got[0].DistanceKm == nil || math.Abs(*got[0].DistanceKm-3) > 1e-6 {
		t.Fatalf("expected distance ~3km, got %v", got[0].DistanceKm)
	}
	if got[1].DistanceKm != nil {
		t.Fatalf("expected no distance without coordinates")
	}

	if l := WithDistances(items, nil); l[0].DistanceKm != nil {
		t.Fatalf("expected no distance without user location")
	}
}

func TestFilters_ApplyAndNormalize(t *testing.T) {
	q := "milo"
	st := StatusFilter(StatusFound)

	f := DefaultFilters().Apply(FilterPatch{Query: &q})
	if f.Query != "milo" || f.Status != StatusAll || f.Species != SpeciesAll {
		t.Fatalf("unexpected merge result %+v", f)
	}

	f = f.Apply(FilterPatch{Status: &st})
	if f.Query != "milo" || f.Status != StatusFilter(StatusFound) {
		t.Fatalf("patch must keep untouched fields, got %+v", f)
	}

	bad := Filters{Query: "x", Status: "Maybe", Species: "Bird"}.Normalized()
	if bad.Status != StatusAll || bad.Species != SpeciesAll || bad.Query != "x" {
		t.Fatalf("unexpected normalization %+v", bad)
	}
}
