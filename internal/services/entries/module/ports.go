package module

import dom "wattpool/internal/services/entries/domain"

// Ports holds the ports exposed by the entries module
type Ports struct {
	Reader  dom.ReaderPort
	Service dom.ServicePort
}
