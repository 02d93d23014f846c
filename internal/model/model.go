package model

import (
	"time"
)

type UserType string

const (
	TypeAdmin        UserType = "admin"
	TypeUser         UserType = "user"
	TypeCinemaWorker UserType = "cinemaWorker"
)

type WatchState string

const (
	StateToWatch WatchState = "toWatch"
	StateWatched WatchState = "watched"
)

// Account is the identity-provider record behind a sign-in. It is separate
// from UserProfile: the account authenticates, the profile carries the role.
type Account struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Email          string `json:"email" gorm:"size:254;not null;uniqueIndex"`
	HashedPassword string `json:"-" gorm:"not null"`
	DisplayName    string `json:"displayName" gorm:"size:100"`
}

// UserProfile shares its primary key with the Account it belongs to.
// Type stays empty until an admin assigns a role; an empty type is allowed
// nowhere. CinemaID is set iff Type is cinemaWorker.
type UserProfile struct {
	ID          uint     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Username    string   `json:"username" gorm:"size:100"`
	Email       string   `json:"email" gorm:"size:254"`
	Description string   `json:"description" gorm:"type:text"`
	Type        UserType `json:"type" gorm:"type:varchar(16)"`
	CinemaID    *uint    `json:"cinemaId,omitempty" gorm:"index"`
}

type Movie struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"size:200;not null"`
	Director    string `json:"director" gorm:"size:100"`
	ReleaseDate string `json:"releaseDate" gorm:"size:32"`
	GenreIDs    []uint `json:"genres" gorm:"serializer:json"`
}

type Genre struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:64;not null;uniqueIndex"`
}

type Cinema struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"size:120;not null"`
	Address string `json:"address" gorm:"size:200"`
	Email   string `json:"email" gorm:"size:254"`
}

// Screening references Movie and Cinema by id only; the store enforces no
// foreign keys, so a dangling reference after a partial delete is possible.
type Screening struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	MovieID     uint      `json:"movieId" gorm:"not null;index"`
	CinemaID    uint      `json:"cinemaId" gorm:"not null;index"`
	Date        time.Time `json:"date" gorm:"not null"`
	Hall        string    `json:"hall" gorm:"size:32"`
	TicketCount int       `json:"ticketCount"`
	PriceCents  int       `json:"priceCents"`
}

// DefaultPriceCents is charged when a screening has no price set.
const DefaultPriceCents = 1000

type PersonalMovie struct {
	ID      uint       `json:"id" gorm:"primaryKey"`
	UserID  uint       `json:"userId" gorm:"not null;uniqueIndex:idx_user_movie"`
	MovieID uint       `json:"movieId" gorm:"not null;uniqueIndex:idx_user_movie"`
	State   WatchState `json:"state" gorm:"type:varchar(16);not null"`
	Rating  int        `json:"rating"`
	Review  string     `json:"review" gorm:"type:text"`
}
