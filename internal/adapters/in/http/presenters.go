package http

import (
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/generated/servers"
)

// PresentOrder renders an order aggregate in its public JSON shape. It is
// also the payload of ordenCreada and ordenActualizada notifications.
func PresentOrder(o *order.Order) servers.Order {
	pauses := make([]servers.Pause, 0, len(o.Pauses()))
	for _, p := range o.Pauses() {
		pauses = append(pauses, presentPause(p))
	}

	return servers.Order{
		Id:                o.ID().Int64(),
		Nombre:            o.Name(),
		Descripcion:       optionalString(o.Description()),
		HoraInicio:        o.StartedAt(),
		HoraFin:           o.FinishedAt(),
		TiempoTotal:       o.TotalActiveSeconds(),
		TiempoTotalPausas: o.TotalPauseSeconds(),
		Estado:            servers.OrderStatus(o.Status().String()),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
		Pausas:            pauses,
	}
}

// PresentOrderEvent adapts PresentOrder to the notifier's presenter signature.
func PresentOrderEvent(o *order.Order) any {
	return PresentOrder(o)
}

func presentPause(p *order.Pause) servers.Pause {
	return servers.Pause{
		Id:      p.ID().Int64(),
		OrdenId: p.OrderID().Int64(),
		Motivo:  p.Reason(),
		Inicio:  p.StartedAt(),
		Fin:     p.EndedAt(),
		Tiempo:  p.DurationSeconds(),
	}
}

func presentOrderView(v queries.OrderView) servers.Order {
	pauses := make([]servers.Pause, 0, len(v.Pauses))
	for _, p := range v.Pauses {
		pauses = append(pauses, servers.Pause{
			Id:      p.ID,
			OrdenId: p.OrderID,
			Motivo:  p.Reason,
			Inicio:  p.StartedAt,
			Fin:     p.EndedAt,
			Tiempo:  p.DurationSeconds,
		})
	}

	return servers.Order{
		Id:                v.ID,
		Nombre:            v.Name,
		Descripcion:       v.Description,
		HoraInicio:        v.StartedAt,
		HoraFin:           v.FinishedAt,
		TiempoTotal:       v.TotalActiveSeconds,
		TiempoTotalPausas: v.TotalPauseSeconds,
		Estado:            servers.OrderStatus(v.Status.String()),
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
		Pausas:            pauses,
	}
}

func presentReport(r queries.OrderReport) servers.Report {
	pauses := make([]servers.ReportPause, 0, len(r.Pauses))
	for _, p := range r.Pauses {
		pauses = append(pauses, servers.ReportPause{
			Motivo: p.Reason,
			Inicio: p.StartedAt,
			Fin:    p.EndedAt,
			Tiempo: p.DurationSeconds,
		})
	}

	return servers.Report{
		Id:                r.ID,
		Nombre:            r.Name,
		Descripcion:       r.Description,
		HoraInicio:        r.StartedAt,
		HoraFin:           r.FinishedAt,
		TiempoTotal:       r.TotalActiveSeconds,
		TiempoTotalPausas: r.TotalPauseSeconds,
		Pausas:            pauses,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
