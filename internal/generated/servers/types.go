// Package servers holds the HTTP contract of the service: the OpenAPI
// document, the request and response types it defines, and the echo glue that
// binds path parameters before calling a ServerInterface.
package servers

import (
	"time"
)

// Defines values for OrderStatus.
const (
	OrderStatusCreated  OrderStatus = "Created"
	OrderStatusRunning  OrderStatus = "Running"
	OrderStatusPaused   OrderStatus = "Paused"
	OrderStatusFinished OrderStatus = "Finished"
)

// Error defines model for Error.
type Error struct {
	Details *string `json:"details,omitempty"`
	Error   string  `json:"error"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Descripcion *string `json:"descripcion"`
	Nombre      string  `json:"nombre"`
}

// NewPause defines model for NewPause.
type NewPause struct {
	Motivo string `json:"motivo"`
}

// Order defines model for Order.
type Order struct {
	CreatedAt   time.Time   `json:"createdAt"`
	Descripcion *string     `json:"descripcion"`
	Estado      OrderStatus `json:"estado"`
	HoraFin     *time.Time  `json:"horaFin"`
	HoraInicio  *time.Time  `json:"horaInicio"`
	Id          int64       `json:"id"`
	Nombre      string      `json:"nombre"`
	Pausas      []Pause     `json:"pausas"`

	// TiempoTotal Active seconds, fixed at finish
	TiempoTotal int64 `json:"tiempoTotal"`

	// TiempoTotalPausas Sum of closed pause durations in seconds
	TiempoTotalPausas int64     `json:"tiempoTotalPausas"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// Pause defines model for Pause.
type Pause struct {
	Fin     *time.Time `json:"fin"`
	Id      int64      `json:"id"`
	Inicio  time.Time  `json:"inicio"`
	Motivo  string     `json:"motivo"`
	OrdenId int64      `json:"ordenId"`
	Tiempo  *int64     `json:"tiempo"`
}

// Report defines model for Report.
type Report struct {
	Descripcion       *string       `json:"descripcion"`
	HoraFin           *time.Time    `json:"horaFin"`
	HoraInicio        *time.Time    `json:"horaInicio"`
	Id                int64         `json:"id"`
	Nombre            string        `json:"nombre"`
	Pausas            []ReportPause `json:"pausas"`
	TiempoTotal       int64         `json:"tiempoTotal"`
	TiempoTotalPausas int64         `json:"tiempoTotalPausas"`
}

// ReportPause defines model for ReportPause.
type ReportPause struct {
	Fin    *time.Time `json:"fin"`
	Inicio time.Time  `json:"inicio"`
	Motivo string     `json:"motivo"`
	Tiempo *int64     `json:"tiempo"`
}

// OrderId defines model for OrderId.
type OrderId = int64

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// PauseOrderJSONRequestBody defines body for PauseOrder for application/json ContentType.
type PauseOrderJSONRequestBody = NewPause
