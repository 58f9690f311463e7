package schedule

import "testing"

func TestPeriodicityMonths(t *testing.T) {
	tests := []struct {
		periodicity Periodicity
		want        int
	}{
		{Monthly, 1},
		{Bimonthly, 2},
		{Quarterly, 3},
		{FourMonthly, 4},
		{Semiannual, 6},
		{Annual, 12},
		// Откат на ежемесячную для неизвестных значений
		{Periodicity("weekly"), 1},
		{Periodicity(""), 1},
	}

	for _, tt := range tests {
		if got := tt.periodicity.Months(); got != tt.want {
			t.Errorf("Months(%q) = %d, want %d", tt.periodicity, got, tt.want)
		}
	}
}

func TestParsePeriodicity(t *testing.T) {
	for _, valid := range []string{"monthly", "bimonthly", "quarterly", "four_monthly", "semiannual", "annual"} {
		p, err := ParsePeriodicity(valid)
		if err != nil {
			t.Errorf("ParsePeriodicity(%q) returned error: %v", valid, err)
		}
		if !p.Valid() {
			t.Errorf("ParsePeriodicity(%q) returned invalid periodicity", valid)
		}
	}

	for _, invalid := range []string{"", "weekly", "MONTHLY", "mensual"} {
		if _, err := ParsePeriodicity(invalid); err == nil {
			t.Errorf("ParsePeriodicity(%q) expected error, got nil", invalid)
		}
	}
}
