package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"WARN", logrus.WarnLevel},
		{"bogus", logrus.InfoLevel},
		{"", logrus.InfoLevel},
	}

	for _, tt := range tests {
		InitWithOutput(tt.in, "text", &bytes.Buffer{})
		if Log.GetLevel() != tt.want {
			t.Errorf("level %q: expected %v, got %v", tt.in, tt.want, Log.GetLevel())
		}
	}
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithOutput("info", "JSON", &buf)

	Log.WithField("cells", 12).Info("grid loaded")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected a JSON line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "grid loaded" || entry["cells"] != float64(12) {
		t.Errorf("Unexpected entry %v", entry)
	}
}
