package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"strings"
)

// StorageKey names the slot a session record is stored under.
const StorageKey = "test-users"

const (
	fieldID               = "_id"
	fieldUsername         = "username"
	fieldIsAvatarImageSet = "isAvatarImageSet"
	fieldAvatarImage      = "avatarImage"
)

// ErrInvalidRecord indicates stored JSON that is not a session object.
var ErrInvalidRecord = errors.New("invalid session record")

// Record is the session user as written by the login flow.
type Record struct {
	ID               string
	Username         string
	IsAvatarImageSet bool
	AvatarImage      string

	// extra keeps fields this package does not interpret, as raw JSON.
	extra map[string]json.RawMessage
	// blankUsername is the stored username when it was "" or null.
	blankUsername json.RawMessage
}

// LoggedIn reports whether the record identifies a user.
func (r Record) LoggedIn() bool {
	return strings.TrimSpace(r.ID) != ""
}

// WithAvatar returns a copy of r marked as having image set as its avatar.
func (r Record) WithAvatar(image string) Record {
	r.extra = maps.Clone(r.extra)
	r.IsAvatarImageSet = true
	r.AvatarImage = image
	return r
}

// Extra returns the raw JSON of an uninterpreted field.
func (r Record) Extra(name string) (json.RawMessage, bool) {
	value, ok := r.extra[name]
	return value, ok
}

// MarshalJSON writes the known fields over the preserved ones.
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.extra)+4)
	for key, value := range r.extra {
		out[key] = value
	}
	out[fieldID] = r.ID
	switch {
	case r.Username != "":
		out[fieldUsername] = r.Username
	case r.blankUsername != nil:
		out[fieldUsername] = r.blankUsername
	}
	out[fieldIsAvatarImageSet] = r.IsAvatarImageSet
	out[fieldAvatarImage] = r.AvatarImage
	return json.Marshal(out)
}

// UnmarshalJSON reads a session object, keeping unknown fields.
func (r *Record) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("%w: null", ErrInvalidRecord)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	var decoded Record
	if err := decodeField(fields, fieldID, &decoded.ID); err != nil {
		return err
	}
	rawUsername, hasUsername := fields[fieldUsername]
	if err := decodeField(fields, fieldUsername, &decoded.Username); err != nil {
		return err
	}
	if hasUsername && decoded.Username == "" {
		decoded.blankUsername = bytes.Clone(rawUsername)
	}
	if err := decodeField(fields, fieldIsAvatarImageSet, &decoded.IsAvatarImageSet); err != nil {
		return err
	}
	if err := decodeField(fields, fieldAvatarImage, &decoded.AvatarImage); err != nil {
		return err
	}
	if len(fields) > 0 {
		decoded.extra = fields
	}
	*r = decoded
	return nil
}

// decodeField moves a known field out of fields into target. JSON null
// leaves the zero value.
func decodeField(fields map[string]json.RawMessage, name string, target any) error {
	raw, ok := fields[name]
	if !ok {
		return nil
	}
	delete(fields, name)
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: field %s: %v", ErrInvalidRecord, name, err)
	}
	return nil
}

// Decode parses a stored payload.
func Decode(payload []byte) (Record, error) {
	var record Record
	if err := json.Unmarshal(payload, &record); err != nil {
		return Record{}, err
	}
	return record, nil
}

// Encode serializes record for storage.
func Encode(record Record) ([]byte, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode session record: %w", err)
	}
	return payload, nil
}
