package internals

import (
	"errors"
	"testing"

	"github.com/MikuMikuMe/green-travel-planner/model"
)

func TestSuggestRouteMinimum(t *testing.T) {
	testCases := []struct {
		name     string
		report   model.EmissionsReport
		expected model.Mode
	}{
		{
			name: "bike lowest",
			report: model.EmissionsReport{
				model.ModeCar:             150.0,
				model.ModeBike:            7.5,
				model.ModePublicTransport: 30.0,
			},
			expected: model.ModeBike,
		},
		{
			name: "public transport lowest",
			report: model.EmissionsReport{
				model.ModeCar:             120.0,
				model.ModeBike:            9.9,
				model.ModePublicTransport: 5.0,
			},
			expected: model.ModePublicTransport,
		},
		{
			name: "car lowest",
			report: model.EmissionsReport{
				model.ModeCar:             1.0,
				model.ModeBike:            9.0,
				model.ModePublicTransport: 20.0,
			},
			expected: model.ModeCar,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			mode, err := SuggestRoute(testCase.report)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if mode != testCase.expected {
				t.Errorf("Expected %s, got %s", testCase.expected, mode)
			}
		})
	}
}

func TestSuggestRouteTieKeepsEarlierMode(t *testing.T) {
	report := model.EmissionsReport{
		model.ModeCar:             5.0,
		model.ModeBike:            5.0,
		model.ModePublicTransport: 10.0,
	}

	mode, err := SuggestRoute(report)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mode != model.ModeCar {
		t.Errorf("Expected tie to keep car, got %s", mode)
	}
}

func TestSuggestRouteEmptyReport(t *testing.T) {
	_, err := SuggestRoute(model.EmissionsReport{})
	if !errors.Is(err, ErrEmptyReport) {
		t.Errorf("Expected ErrEmptyReport, got %v", err)
	}
}

func TestSuggestRouteOverSampledReports(t *testing.T) {
	sampler := newTestSampler(4)
	route := model.Route{Start: "A", End: "B"}

	for i := 0; i < 100; i++ {
		report := sampler.Sample(route)

		mode, err := SuggestRoute(report)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		selected, ok := report[mode]
		if !ok {
			t.Fatalf("Suggested mode %s is not in the report", mode)
		}
		for other, emission := range report {
			if selected > emission {
				t.Errorf("Suggested %s (%f) but %s has lower emission (%f)", mode, selected, other, emission)
			}
		}
	}
}
