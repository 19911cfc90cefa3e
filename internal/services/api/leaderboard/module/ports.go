package module

import (
	"wattpool/internal/services/api/leaderboard/domain"
	entries "wattpool/internal/services/entries/domain"
)

// Ports are injected with modkit.WithPorts
type Ports struct {
	Reader entries.ReaderPort
}

// Exports are what the module offers other modules
type Exports struct {
	Leaderboard domain.ServicePort
}
