package hooks

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/blackwell-systems/bashstats/internal/store"
)

// transcriptUsage mirrors the usage object a transcript entry carries.
type transcriptUsage struct {
	InputTokens              *int64 `json:"input_tokens"`
	OutputTokens             *int64 `json:"output_tokens"`
	CacheCreationInputTokens *int64 `json:"cache_creation_input_tokens"`
	CacheReadInputTokens     *int64 `json:"cache_read_input_tokens"`
}

// transcriptEntry is one JSONL line of an agent transcript. Usage may appear
// at the top level, under response, or under message depending on the writer.
type transcriptEntry struct {
	ID       string           `json:"id"`
	Usage    *transcriptUsage `json:"usage"`
	Response *struct {
		Usage *transcriptUsage `json:"usage"`
	} `json:"response"`
	Message *struct {
		ID    string           `json:"id"`
		Usage *transcriptUsage `json:"usage"`
	} `json:"message"`
}

// ExtractTokenUsage reads a transcript JSONL file and sums token usage.
//
// Transcripts carry multiple entries per API call, one per streaming content
// block, each with the same usage object. Deduplicating by message ID counts
// each API call exactly once; the last occurrence wins since it carries the
// most complete usage. Returns nil (no error) when the file is missing or
// holds no usage data.
func ExtractTokenUsage(transcriptPath string) (*store.TokenUsage, error) {
	f, err := os.Open(transcriptPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	seen := map[string]transcriptUsage{}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry transcriptEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			// Skip unparseable lines.
			continue
		}

		usage := entry.Usage
		if usage == nil && entry.Response != nil {
			usage = entry.Response.Usage
		}
		if usage == nil && entry.Message != nil {
			usage = entry.Message.Usage
		}
		if usage == nil || usage.InputTokens == nil {
			continue
		}

		msgID := ""
		if entry.Message != nil && entry.Message.ID != "" {
			msgID = entry.Message.ID
		} else if entry.ID != "" {
			msgID = entry.ID
		} else {
			msgID = fmt.Sprintf("_line_%d", len(seen))
		}
		seen[msgID] = *usage
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(seen) == 0 {
		return nil, nil
	}

	total := &store.TokenUsage{}
	for _, u := range seen {
		total.InputTokens += deref(u.InputTokens)
		total.OutputTokens += deref(u.OutputTokens)
		total.CacheCreationInputTokens += deref(u.CacheCreationInputTokens)
		total.CacheReadInputTokens += deref(u.CacheReadInputTokens)
	}
	return total, nil
}

func deref(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}
