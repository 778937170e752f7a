// package formatter renders playlist entries as CSV, plain text or JSON
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/desertthunder/spotlist/internal/models"
	"github.com/desertthunder/spotlist/internal/shared"
)

// Supported output formats.
const (
	FormatText = "txt"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// EntriesToCSV converts entries to CSV with columns: Position, ID, Title, Album, Release Date, Disc, Track
func EntriesToCSV(entries []models.PlaylistEntry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Position", "ID", "Title", "Album", "Release Date", "Disc", "Track"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, e := range entries {
		record := []string{
			strconv.Itoa(i + 1),
			e.ID,
			e.Title,
			e.Album,
			e.ReleaseDate,
			strconv.Itoa(e.DiscNumber),
			strconv.Itoa(e.TrackNumber),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// EntriesToText converts entries to a numbered plain text listing.
func EntriesToText(entries []models.PlaylistEntry) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Tracks: %d\n\n", len(entries)))
	for i, e := range entries {
		buf.WriteString(fmt.Sprintf("%d. %s [%s] %s (disc %d, track %d)\n",
			i+1, e.ReleaseDate, e.Album, e.Title, e.DiscNumber, e.TrackNumber))
	}

	return buf.Bytes()
}

// Entries renders entries in the named format. Unknown formats fail with [shared.ErrInvalidArgument].
func Entries(entries []models.PlaylistEntry, format string, pretty bool) ([]byte, error) {
	switch format {
	case FormatCSV:
		return EntriesToCSV(entries)
	case FormatJSON:
		return shared.MarshalJSON(entries, pretty)
	case FormatText, "":
		return EntriesToText(entries), nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q (want txt, csv or json)", shared.ErrInvalidArgument, format)
	}
}
