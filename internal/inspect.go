package internal

import (
	"fmt"
	"strings"
	"team-chat/repositories"
	"time"

	"github.com/mama165/sdk-go/database"
)

// KeyType names the record family of a badger key from its prefix.
func KeyType(key string) string {
	prefix, _, found := strings.Cut(key, ":")
	if !found {
		return "UNKNOWN"
	}
	return strings.ToUpper(strings.ReplaceAll(prefix, "-", "_"))
}

// MessageMapper renders message records in the badger inspector, other
// records keep the raw view with their family as type.
func MessageMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	row.Type = KeyType(key)
	if !strings.HasPrefix(key, "message:") {
		return row
	}

	m, err := repositories.DecodeMessage(val)
	if err != nil {
		row.Detail = "Error: decode failed"
		return row
	}
	row.Detail = fmt.Sprintf("%s %s %s", m.CreatedAt.Format(time.RFC3339), m.Feed(), MessageDetail(m))
	return row
}

func MessageDetail(m repositories.DiskMessage) string {
	var flags []string
	if m.Removed {
		flags = append(flags, "removed")
	}
	if m.UpdatedAt != nil {
		flags = append(flags, "edited")
	}
	if m.StorageID != "" {
		flags = append(flags, "image:"+m.StorageID)
	}
	if len(flags) == 0 {
		return m.Body
	}
	return fmt.Sprintf("%s [%s]", m.Body, strings.Join(flags, ","))
}
