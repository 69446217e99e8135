package archive

import "testing"

func TestNetworkName(t *testing.T) {
	if got := NetworkName("FOXNEWSW"); got != "FOX News" {
		t.Errorf("NetworkName(FOXNEWSW) = %q, want %q", got, "FOX News")
	}
	if got := NetworkName("NOPE"); got != "" {
		t.Errorf("NetworkName(NOPE) = %q, want empty", got)
	}
}

func TestChannels(t *testing.T) {
	codes := Channels()
	if len(codes) != len(StationMappings) {
		t.Fatalf("Channels returned %d codes, want %d", len(codes), len(StationMappings))
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("Channels not sorted: %q before %q", codes[i-1], codes[i])
		}
	}
	if NetworkName(codes[0]) == "" {
		t.Errorf("Channels returned unknown code %q", codes[0])
	}
}

func TestBuildAiredShowIdentifier(t *testing.T) {
	got := BuildAiredShowIdentifier("FOXNEWSW", "20160101", "070000", "Red_Eye")
	want := "FOXNEWSW_20160101_070000_Red_Eye"
	if got != want {
		t.Errorf("BuildAiredShowIdentifier = %q, want %q", got, want)
	}
}

func TestBuildCaptionURL(t *testing.T) {
	client := NewClient(Config{})

	got := client.BuildCaptionURL("FOXNEWSW_20160101_070000_Red_Eye")
	want := "https://archive.org/download/FOXNEWSW_20160101_070000_Red_Eye/FOXNEWSW_20160101_070000_Red_Eye.cc5.srt?t="
	if got != want {
		t.Errorf("BuildCaptionURL = %q, want %q", got, want)
	}
}
