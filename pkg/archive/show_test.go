package archive

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

// showServer serves metadata for one show plus caption chunks keyed by the
// window's "start/end" selector.
func showServer(t *testing.T, identifier, runtime string, chunks map[string]string) (*httptest.Server, *[]string) {
	t.Helper()

	var requestedWindows []string

	mux := http.NewServeMux()
	mux.HandleFunc("/details/"+identifier, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"metadata": {"title": ["test show"], "runtime": [%q]}}`, runtime)
	})
	mux.HandleFunc(fmt.Sprintf("/download/%s/%s.cc5.srt", identifier, identifier),
		func(w http.ResponseWriter, r *http.Request) {
			window := r.URL.Query().Get("t")
			requestedWindows = append(requestedWindows, window)

			srt, ok := chunks[window]
			if !ok {
				http.Error(w, "no captions for window", http.StatusInternalServerError)
				return
			}
			w.Write([]byte(srt))
		})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &requestedWindows
}

func TestShow_GetTranscript(t *testing.T) {
	// 125s runtime with 60s chunks: exactly [0,60), [60,120), [120,125).
	chunks := map[string]string{
		"0/60": "\ufeff1\n00:00:00,000 --> 00:00:30,000\n>> Good evening. Our top story\n\n" +
			"2\n00:00:30,000 --> 00:00:59,000\ncontinues to develop tonight.\n",
		"60/120": "3\n00:00:00,000 --> 00:00:20,000\nAuthorities say more is known now.\n\n" +
			"4\n00:00:20,000 --> 00:00:59,000\n>> Thanks for that report.\n",
		"120/125": "5\n00:00:00,000 --> 00:00:05,000\n>> Good night.\n",
	}

	server, windows := showServer(t, "Test_Show", "00:02:05", chunks)

	client := NewClient(Config{
		BaseURL:         server.URL,
		DownloadBaseURL: server.URL + "/download",
	})

	turns, err := client.Show("Test_Show").GetTranscript(context.Background())
	if err != nil {
		t.Fatalf("GetTranscript returned error: %v", err)
	}

	wantWindows := []string{"0/60", "60/120", "120/125"}
	if !reflect.DeepEqual(*windows, wantWindows) {
		t.Fatalf("requested windows %v, want %v", *windows, wantWindows)
	}

	// The turn split across the first window boundary is merged back into
	// one entry.
	wantTurns := []string{
		"Good evening. Our top story continues to develop tonight. Authorities say more is known now.",
		"Thanks for that report.",
		"Good night.",
	}
	if !reflect.DeepEqual(turns, wantTurns) {
		t.Fatalf("turns = %q, want %q", turns, wantTurns)
	}
}

func TestShow_GetTranscript_WindowFailureAbortsAssembly(t *testing.T) {
	// Second of three windows fails: the whole assembly fails and no
	// partial transcript is returned.
	chunks := map[string]string{
		"0/60": "1\n00:00:00,000 --> 00:00:30,000\n>> First window.\n",
		// "60/120" missing: the server answers 500.
		"120/125": "2\n00:00:00,000 --> 00:00:05,000\n>> Third window.\n",
	}

	server, windows := showServer(t, "Test_Show", "00:02:05", chunks)

	client := NewClient(Config{
		BaseURL:         server.URL,
		DownloadBaseURL: server.URL + "/download",
	})

	turns, err := client.Show("Test_Show").GetTranscript(context.Background())
	if !errors.Is(err, ErrAssembly) {
		t.Fatalf("error = %v, want ErrAssembly", err)
	}
	if turns != nil {
		t.Fatalf("turns = %q, want nil (no partial transcript)", turns)
	}

	// Assembly stops at the failing window; the third is never requested.
	wantWindows := []string{"0/60", "60/120"}
	if !reflect.DeepEqual(*windows, wantWindows) {
		t.Fatalf("requested windows %v, want %v", *windows, wantWindows)
	}
}

func TestShow_GetTranscript_SilentWindow(t *testing.T) {
	chunks := map[string]string{
		"0/60":    "1\n00:00:00,000 --> 00:00:10,000\n>> Before the commercials.\n",
		"60/120":  "", // commercial block: no captions at all
		"120/125": "2\n00:00:00,000 --> 00:00:05,000\n>> And we are back.\n",
	}

	server, _ := showServer(t, "Test_Show", "00:02:05", chunks)

	client := NewClient(Config{
		BaseURL:         server.URL,
		DownloadBaseURL: server.URL + "/download",
	})

	turns, err := client.Show("Test_Show").GetTranscript(context.Background())
	if err != nil {
		t.Fatalf("GetTranscript returned error: %v", err)
	}

	want := []string{"Before the commercials.", "And we are back."}
	if !reflect.DeepEqual(turns, want) {
		t.Fatalf("turns = %q, want %q", turns, want)
	}
}

func TestShow_GetTranscript_MetadataNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, DownloadBaseURL: server.URL + "/download"})

	_, err := client.Show("No_Such_Show").GetTranscript(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestShow_TranscriptCachedAfterFirstAssembly(t *testing.T) {
	chunks := map[string]string{
		"0/60": "1\n00:00:00,000 --> 00:00:10,000\n>> Only window of the show.\n",
	}

	server, windows := showServer(t, "Test_Show", "00:01:00", chunks)

	client := NewClient(Config{
		BaseURL:         server.URL,
		DownloadBaseURL: server.URL + "/download",
	})

	show := client.Show("Test_Show")

	want := []string{"Only window of the show."}
	for i := 0; i < 3; i++ {
		turns, err := show.GetTranscript(context.Background())
		if err != nil {
			t.Fatalf("GetTranscript call %d returned error: %v", i, err)
		}
		if !reflect.DeepEqual(turns, want) {
			t.Fatalf("GetTranscript call %d turns = %q, want %q", i, turns, want)
		}
	}

	if len(*windows) != 1 {
		t.Fatalf("3 GetTranscript calls issued %d caption fetches, want 1 (cached on handle)", len(*windows))
	}
}

func TestShow_SetChunkSecondsDropsCachedTranscript(t *testing.T) {
	chunks := map[string]string{
		"0/60":  "1\n00:00:00,000 --> 00:00:10,000\n>> Sixty second window.\n",
		"0/30":  "1\n00:00:00,000 --> 00:00:10,000\n>> First half.\n",
		"30/60": "2\n00:00:00,000 --> 00:00:10,000\n>> Second half.\n",
	}

	server, windows := showServer(t, "Test_Show", "00:01:00", chunks)

	client := NewClient(Config{
		BaseURL:         server.URL,
		DownloadBaseURL: server.URL + "/download",
	})

	show := client.Show("Test_Show")
	if _, err := show.GetTranscript(context.Background()); err != nil {
		t.Fatalf("GetTranscript returned error: %v", err)
	}

	show.SetChunkSeconds(30)
	turns, err := show.GetTranscript(context.Background())
	if err != nil {
		t.Fatalf("GetTranscript after SetChunkSeconds returned error: %v", err)
	}

	want := []string{"First half.", "Second half."}
	if !reflect.DeepEqual(turns, want) {
		t.Fatalf("turns = %q, want %q", turns, want)
	}
	wantWindows := []string{"0/60", "0/30", "30/60"}
	if !reflect.DeepEqual(*windows, wantWindows) {
		t.Fatalf("requested windows %v, want %v", *windows, wantWindows)
	}
}

func TestShow_SetChunkSeconds(t *testing.T) {
	chunks := map[string]string{
		"0/90":   "1\n00:00:00,000 --> 00:00:10,000\n>> Ninety second chunks.\n",
		"90/125": "2\n00:00:00,000 --> 00:00:05,000\n>> Shorter tail.\n",
	}

	server, windows := showServer(t, "Test_Show", "00:02:05", chunks)

	client := NewClient(Config{
		BaseURL:         server.URL,
		DownloadBaseURL: server.URL + "/download",
	})

	show := client.Show("Test_Show")
	show.SetChunkSeconds(90)

	if _, err := show.GetTranscript(context.Background()); err != nil {
		t.Fatalf("GetTranscript returned error: %v", err)
	}

	wantWindows := []string{"0/90", "90/125"}
	if !reflect.DeepEqual(*windows, wantWindows) {
		t.Fatalf("requested windows %v, want %v", *windows, wantWindows)
	}
}
