package domain

import "time"

// Coordinate — точка WGS 84 в градусах.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Location — закэшированный результат геокодирования адреса.
// Resolved=false означает, что геокодер адрес не нашёл; такая запись тоже хранится.
type Location struct {
	Address    string
	Coordinate Coordinate
	Resolved   bool
	VerifiedAt time.Time
}

// Manager — сотрудник бэк-офиса.
type Manager struct {
	ID           int64
	Username     string
	PasswordHash string
	IsStaff      bool
}
