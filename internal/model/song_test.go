package model

import "testing"

func TestSong_DisplayLabel(t *testing.T) {
	tests := []struct {
		title    string
		number   string
		expected string
	}{
		{"Amazing Grace", "1", "Amazing Grace — 1"},
		{"Amazing Grace", "", "Amazing Grace"},
		{"How Great Thou Art", "22", "How Great Thou Art — 22"},
	}

	for _, test := range tests {
		song := Song{Title: test.title, Number: test.number}
		result := song.DisplayLabel()
		if result != test.expected {
			t.Errorf("DisplayLabel() with title='%s', number='%s' = '%s', expected '%s'",
				test.title, test.number, result, test.expected)
		}
	}
}

func TestSong_Matches(t *testing.T) {
	song := Song{Title: "Amazing Grace", Number: "101"}

	tests := []struct {
		query    string
		expected bool
	}{
		{"", true},
		{"   ", true},
		{"amazing", true},
		{"GRACE", true},
		{"zing gr", true},
		{"101", true},
		{"10", true},
		{"great", false},
		{"102", false},
	}

	for _, test := range tests {
		result := song.Matches(test.query)
		if result != test.expected {
			t.Errorf("Matches(%q) = %v, expected %v", test.query, result, test.expected)
		}
	}
}
