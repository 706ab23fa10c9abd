package entity

import (
	"encoding/json"
	"time"

	domainerrors "favorites/internal/domain/errors"
)

// Profile is an account that can post products and favorite them.
type Profile struct {
	id           *int64    // Store-assigned key, nil until inserted.
	username     string    // Unique handle, at most 32 runes.
	location     string    // Free-form location, at most 64 runes.
	joinDate     time.Time // When the profile was created.
	passwordHash string    // Hex digest; set together with passwordSalt.
	passwordSalt string    // Hex salt; regenerated on every password change.
}

// NewProfile builds a validated profile. joinDate accepts nil, time.Time,
// *time.Time or a YYYY-MM-DD string.
func NewProfile(id *int64, username, location string, joinDate any) (*Profile, error) {
	p := &Profile{}
	if err := p.SetID(id); err != nil {
		return nil, err
	}
	if err := p.SetUsername(username); err != nil {
		return nil, err
	}
	if err := p.SetLocation(location); err != nil {
		return nil, err
	}
	if err := p.SetJoinDate(joinDate); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Profile) ID() *int64 {
	if p.id == nil {
		return nil
	}
	v := *p.id

	return &v
}

// IDValue returns the id or zero when not persisted.
func (p *Profile) IDValue() int64 {
	if p.id == nil {
		return 0
	}

	return *p.id
}

func (p *Profile) Username() string     { return p.username }
func (p *Profile) Location() string     { return p.location }
func (p *Profile) JoinDate() time.Time  { return p.joinDate }
func (p *Profile) PasswordHash() string { return p.passwordHash }
func (p *Profile) PasswordSalt() string { return p.passwordSalt }

// HasPassword reports whether credentials are set.
func (p *Profile) HasPassword() bool {
	return p.passwordHash != ""
}

func (p *Profile) SetID(id *int64) error {
	v, err := validateID("profile id", p.id, id)
	if err != nil {
		return err
	}
	p.id = v

	return nil
}

func (p *Profile) SetUsername(username string) error {
	v, err := sanitizeText("profile username", username, MaxUsernameLength)
	if err != nil {
		return err
	}
	p.username = v

	return nil
}

func (p *Profile) SetLocation(location string) error {
	v, err := sanitizeText("profile location", location, MaxLocationLength)
	if err != nil {
		return err
	}
	p.location = v

	return nil
}

func (p *Profile) SetJoinDate(joinDate any) error {
	v, err := ParseDate("profile join date", joinDate)
	if err != nil {
		return err
	}
	p.joinDate = v

	return nil
}

// SetPassword stores a digest and its salt. Both must be present.
func (p *Profile) SetPassword(hash, salt string) error {
	if hash == "" || salt == "" {
		return domainerrors.Empty("profile hash and salt must be set together")
	}
	p.passwordHash = hash
	p.passwordSalt = salt

	return nil
}

// ClearPassword removes both credential fields.
func (p *Profile) ClearPassword() {
	p.passwordHash = ""
	p.passwordSalt = ""
}

type profileJSON struct {
	ProfileID       *int64 `json:"profileId"`
	ProfileUsername string `json:"profileUsername"`
	ProfileLocation string `json:"profileLocation"`
	ProfileJoinDate int64  `json:"profileJoinDate"`
}

// MarshalJSON omits credentials and encodes the join date as epoch milliseconds.
func (p *Profile) MarshalJSON() ([]byte, error) {
	return json.Marshal(profileJSON{
		ProfileID:       p.id,
		ProfileUsername: p.username,
		ProfileLocation: p.location,
		ProfileJoinDate: millis(p.joinDate),
	})
}
