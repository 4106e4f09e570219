package model

import "testing"

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input    int
		expected Position
	}{
		{input: 1, expected: POS_GOL},
		{input: 2, expected: POS_LAT},
		{input: 3, expected: POS_ZAG},
		{input: 4, expected: POS_MEI},
		{input: 5, expected: POS_ATA},
		{input: 6, expected: POS_TEC},
		{input: 0, expected: POS_UNKNOWN},
		{input: 7, expected: POS_UNKNOWN},
		{input: -1, expected: POS_UNKNOWN},
	}

	for _, tc := range tests {
		a := ParsePosition(tc.input)
		if a != tc.expected {
			t.Errorf("input: '%d', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestParseAthleteStatus(t *testing.T) {
	tests := []struct {
		input    int
		expected AthleteStatus
	}{
		{input: 2, expected: STATUS_DOUBT},
		{input: 3, expected: STATUS_SUSPENDED},
		{input: 5, expected: STATUS_INJURED},
		{input: 6, expected: STATUS_NULL},
		{input: 7, expected: STATUS_PROBABLE},
		{input: 1, expected: STATUS_UNKNOWN},
		{input: 4, expected: STATUS_UNKNOWN},
	}

	for _, tc := range tests {
		a := ParseAthleteStatus(tc.input)
		if a != tc.expected {
			t.Errorf("input: '%d', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}
