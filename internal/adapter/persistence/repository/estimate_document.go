package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"product_estimator/internal/domain/entities"

	"github.com/rs/zerolog/log"
)

const estimateDocumentVersion = 1

// estimateDocument is the JSON stored in the estimate_data column.
type estimateDocument struct {
	Version int             `json:"version"`
	Rooms   []entities.Room `json:"rooms"`
}

func encodeEstimateData(rooms []entities.Room) (string, error) {
	if rooms == nil {
		rooms = []entities.Room{}
	}
	b, err := json.Marshal(estimateDocument{Version: estimateDocumentVersion, Rooms: rooms})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeEstimateData never fails. A malformed document is logged and read as
// an estimate with no rooms so the summary columns stay usable.
func decodeEstimateData(estimateID, raw string) []entities.Room {
	raw = string(bytes.TrimSpace([]byte(raw)))
	if raw == "" {
		return nil
	}
	rooms, err := parseEstimateData([]byte(raw))
	if err != nil {
		log.Warn().Err(err).Str("estimate_id", estimateID).Msg("[estimate][repository] malformed estimate_data; reading as empty")
		return nil
	}
	return rooms
}

func parseEstimateData(raw []byte) ([]entities.Room, error) {
	if raw[0] == '[' {
		return parseRoomList(raw)
	}

	var doc struct {
		Version int             `json:"version"`
		Rooms   json.RawMessage `json:"rooms"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc.Version > estimateDocumentVersion {
		return nil, fmt.Errorf("unsupported estimate_data version %d", doc.Version)
	}
	rooms := bytes.TrimSpace(doc.Rooms)
	if len(rooms) == 0 || bytes.Equal(rooms, []byte("null")) {
		return nil, nil
	}
	switch rooms[0] {
	case '[':
		return parseRoomList(rooms)
	case '{':
		return parseRoomMap(rooms)
	default:
		return nil, errors.New("rooms must be a list or an object")
	}
}

func parseRoomList(raw []byte) ([]entities.Room, error) {
	var rooms []entities.Room
	if err := json.Unmarshal(raw, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// parseRoomMap reads the keyed form {"<room id>": {...}} keeping key order.
func parseRoomMap(raw []byte) ([]entities.Room, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var rooms []entities.Room
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected room key %v", tok)
		}
		var room entities.Room
		if err := dec.Decode(&room); err != nil {
			return nil, err
		}
		if room.ID == "" {
			room.ID = key
		}
		rooms = append(rooms, room)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return rooms, nil
}
