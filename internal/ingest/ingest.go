package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"argus/internal/ocr"
)

// recordLine is the JSONL wire shape for one OCR record.
type recordLine struct {
	ImageID string `json:"image_id"`
	RawText string `json:"raw_text"`
}

// ReadRecordsFile loads records from a JSON Lines file, one object per line.
// Blank lines are skipped; input order is preserved.
func ReadRecordsFile(path string) ([]ocr.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records file: %w", err)
	}
	defer file.Close()

	var records []ocr.Record
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rl recordLine
		if err := json.Unmarshal([]byte(line), &rl); err != nil {
			return nil, fmt.Errorf("parse record at line %d: %w", lineNo, err)
		}
		if strings.TrimSpace(rl.ImageID) == "" {
			return nil, fmt.Errorf("record at line %d has no image_id", lineNo)
		}
		records = append(records, ocr.NewRecord(rl.ImageID, rl.RawText))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read records file: %w", err)
	}
	return records, nil
}

// ReadTextDir loads records from a directory of sidecar text files. A file
// named IMG_0042.jpg.txt supplies the OCR text for image IMG_0042.jpg; plain
// name.txt files fall back to "name" as the image id. Records come back
// sorted by image id so runs over the same directory are reproducible.
func ReadTextDir(dir string) ([]ocr.Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read text directory: %w", err)
	}

	var records []ocr.Record
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read sidecar %s: %w", entry.Name(), err)
		}
		imageID := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		records = append(records, ocr.NewRecord(imageID, string(data)))
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ImageID < records[j].ImageID
	})
	return records, nil
}
