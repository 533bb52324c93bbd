package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-admin/internal/models"
)

const unknownClient = "Unknown client"

type AppointmentInput struct {
	Date       string
	Time       string
	ClientID   string
	ServiceIDs []string
	Notes      string
}

// AppointmentPatch shallow-merges onto the base record. ServiceIDs, when
// non-nil, never touch the base record: the link rows are fully replaced
// instead. An empty non-nil slice clears every link.
type AppointmentPatch struct {
	Date       *string
	Time       *string
	ClientID   *string
	Notes      *string
	ServiceIDs []string
}

// AddAppointment writes the base record, then one link row per service id —
// verbatim, no dedup and no existence check against the Service collection.
// A stale id produces a dangling link until the next full link replace.
func (s *Store) AddAppointment(ctx context.Context, companyID, userID string, in AppointmentInput) (*models.AppointmentDetail, error) {
	appointments, err := readCollection[models.Appointment](ctx, s.backend, colAppointments)
	if err != nil {
		return nil, err
	}

	appointment := models.Appointment{
		ID:        uuid.NewString(),
		Date:      in.Date,
		Time:      in.Time,
		ClientID:  in.ClientID,
		CompanyID: companyID,
		Notes:     in.Notes,
		Paid:      false,
		CreatedAt: time.Now().UTC(),
		CreatedBy: userID,
	}

	appointments = append(appointments, appointment)
	if err := writeCollection(ctx, s.backend, colAppointments, appointments); err != nil {
		return nil, err
	}

	if err := s.addAppointmentServices(ctx, appointment.ID, in.ServiceIDs); err != nil {
		return nil, err
	}

	clientName, err := s.clientNameFor(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	if _, err := s.LogActivity(ctx, userID, models.ActionCreate, "appointment", appointment.ID, map[string]any{
		"client_name": clientName,
		"date":        in.Date,
		"time":        in.Time,
	}); err != nil {
		return nil, err
	}

	return &models.AppointmentDetail{
		Appointment: appointment,
		ServiceIDs:  append([]string{}, in.ServiceIDs...),
	}, nil
}

func (s *Store) UpdateAppointment(ctx context.Context, userID, appointmentID string, patch AppointmentPatch) (*models.AppointmentDetail, error) {
	appointments, err := readCollection[models.Appointment](ctx, s.backend, colAppointments)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, a := range appointments {
		if a.ID == appointmentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrAppointmentNotFound
	}

	appointment := appointments[idx]
	if patch.Date != nil {
		appointment.Date = *patch.Date
	}
	if patch.Time != nil {
		appointment.Time = *patch.Time
	}
	if patch.ClientID != nil {
		appointment.ClientID = *patch.ClientID
	}
	if patch.Notes != nil {
		appointment.Notes = *patch.Notes
	}

	now := time.Now().UTC()
	appointment.UpdatedAt = &now
	appointment.UpdatedBy = userID

	appointments[idx] = appointment
	if err := writeCollection(ctx, s.backend, colAppointments, appointments); err != nil {
		return nil, err
	}

	// Full link replace, not a diff.
	if patch.ServiceIDs != nil {
		if err := s.deleteAppointmentServices(ctx, appointmentID); err != nil {
			return nil, err
		}
		if err := s.addAppointmentServices(ctx, appointmentID, patch.ServiceIDs); err != nil {
			return nil, err
		}
	}

	clientName, err := s.clientNameFor(ctx, appointment.ClientID)
	if err != nil {
		return nil, err
	}

	if _, err := s.LogActivity(ctx, userID, models.ActionUpdate, "appointment", appointmentID, map[string]any{
		"client_name": clientName,
		"date":        appointment.Date,
		"time":        appointment.Time,
	}); err != nil {
		return nil, err
	}

	serviceIDs, err := s.appointmentServiceIDs(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	return &models.AppointmentDetail{
		Appointment: appointment,
		ServiceIDs:  serviceIDs,
	}, nil
}

// UpdateAppointmentPaymentStatus toggles paid either way; there is no
// terminal state.
func (s *Store) UpdateAppointmentPaymentStatus(ctx context.Context, userID, appointmentID string, paid bool) (*models.Appointment, error) {
	appointments, err := readCollection[models.Appointment](ctx, s.backend, colAppointments)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, a := range appointments {
		if a.ID == appointmentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrAppointmentNotFound
	}

	now := time.Now().UTC()
	appointments[idx].Paid = paid
	appointments[idx].UpdatedAt = &now
	appointments[idx].UpdatedBy = userID

	if err := writeCollection(ctx, s.backend, colAppointments, appointments); err != nil {
		return nil, err
	}

	clientName, err := s.clientNameFor(ctx, appointments[idx].ClientID)
	if err != nil {
		return nil, err
	}

	if _, err := s.LogActivity(ctx, userID, models.ActionUpdatePayment, "appointment", appointmentID, map[string]any{
		"client_name": clientName,
		"date":        appointments[idx].Date,
		"time":        appointments[idx].Time,
		"paid":        paid,
	}); err != nil {
		return nil, err
	}

	return &appointments[idx], nil
}

func (s *Store) UpdateAppointmentNotes(ctx context.Context, userID, appointmentID, notes string) (*models.Appointment, error) {
	appointments, err := readCollection[models.Appointment](ctx, s.backend, colAppointments)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, a := range appointments {
		if a.ID == appointmentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrAppointmentNotFound
	}

	now := time.Now().UTC()
	appointments[idx].Notes = notes
	appointments[idx].UpdatedAt = &now
	appointments[idx].UpdatedBy = userID

	if err := writeCollection(ctx, s.backend, colAppointments, appointments); err != nil {
		return nil, err
	}

	if _, err := s.LogActivity(ctx, userID, models.ActionUpdateNotes, "appointment", appointmentID, map[string]any{
		"notes_updated": true,
	}); err != nil {
		return nil, err
	}

	return &appointments[idx], nil
}

func (s *Store) DeleteAppointment(ctx context.Context, userID, appointmentID string) (string, error) {
	appointments, err := readCollection[models.Appointment](ctx, s.backend, colAppointments)
	if err != nil {
		return "", err
	}

	idx := -1
	for i, a := range appointments {
		if a.ID == appointmentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return "", ErrAppointmentNotFound
	}

	// Client name has to be captured before the record goes away.
	clientName, err := s.clientNameFor(ctx, appointments[idx].ClientID)
	if err != nil {
		return "", err
	}
	date := appointments[idx].Date
	at := appointments[idx].Time

	appointments = append(appointments[:idx], appointments[idx+1:]...)
	if err := writeCollection(ctx, s.backend, colAppointments, appointments); err != nil {
		return "", err
	}

	if err := s.deleteAppointmentServices(ctx, appointmentID); err != nil {
		return "", err
	}

	if _, err := s.LogActivity(ctx, userID, models.ActionDelete, "appointment", appointmentID, map[string]any{
		"client_name": clientName,
		"date":        date,
		"time":        at,
	}); err != nil {
		return "", err
	}

	return appointmentID, nil
}

func (s *Store) CompanyAppointments(ctx context.Context, companyID string) ([]models.AppointmentDetail, error) {
	return s.appointmentsWhere(ctx, func(a models.Appointment) bool {
		return a.CompanyID == companyID
	})
}

func (s *Store) ClientAppointments(ctx context.Context, clientID string) ([]models.AppointmentDetail, error) {
	return s.appointmentsWhere(ctx, func(a models.Appointment) bool {
		return a.ClientID == clientID
	})
}

func (s *Store) UnpaidAppointments(ctx context.Context, companyID string) ([]models.AppointmentDetail, error) {
	return s.appointmentsWhere(ctx, func(a models.Appointment) bool {
		return a.CompanyID == companyID && !a.Paid
	})
}

// appointmentsWhere filters base records and attaches the derived service
// ids in one pass over the link table.
func (s *Store) appointmentsWhere(ctx context.Context, keep func(models.Appointment) bool) ([]models.AppointmentDetail, error) {
	appointments, err := readCollection[models.Appointment](ctx, s.backend, colAppointments)
	if err != nil {
		return nil, err
	}

	links, err := readCollection[models.AppointmentService](ctx, s.backend, colAppointmentServices)
	if err != nil {
		return nil, err
	}

	byAppointment := map[string][]string{}
	for _, l := range links {
		byAppointment[l.AppointmentID] = append(byAppointment[l.AppointmentID], l.ServiceID)
	}

	out := []models.AppointmentDetail{}
	for _, a := range appointments {
		if !keep(a) {
			continue
		}
		serviceIDs := byAppointment[a.ID]
		if serviceIDs == nil {
			serviceIDs = []string{}
		}
		out = append(out, models.AppointmentDetail{
			Appointment: a,
			ServiceIDs:  serviceIDs,
		})
	}
	return out, nil
}

func (s *Store) addAppointmentServices(ctx context.Context, appointmentID string, serviceIDs []string) error {
	if len(serviceIDs) == 0 {
		return nil
	}

	links, err := readCollection[models.AppointmentService](ctx, s.backend, colAppointmentServices)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, serviceID := range serviceIDs {
		links = append(links, models.AppointmentService{
			ID:            uuid.NewString(),
			AppointmentID: appointmentID,
			ServiceID:     serviceID,
			CreatedAt:     now,
		})
	}

	return writeCollection(ctx, s.backend, colAppointmentServices, links)
}

func (s *Store) deleteAppointmentServices(ctx context.Context, appointmentID string) error {
	links, err := readCollection[models.AppointmentService](ctx, s.backend, colAppointmentServices)
	if err != nil {
		return err
	}

	kept := links[:0]
	for _, l := range links {
		if l.AppointmentID != appointmentID {
			kept = append(kept, l)
		}
	}

	return writeCollection(ctx, s.backend, colAppointmentServices, kept)
}

func (s *Store) appointmentServiceIDs(ctx context.Context, appointmentID string) ([]string, error) {
	links, err := readCollection[models.AppointmentService](ctx, s.backend, colAppointmentServices)
	if err != nil {
		return nil, err
	}

	out := []string{}
	for _, l := range links {
		if l.AppointmentID == appointmentID {
			out = append(out, l.ServiceID)
		}
	}
	return out, nil
}

// clientNameFor resolves a display name for log entries. A missing client is
// not an error here — the log just says so.
func (s *Store) clientNameFor(ctx context.Context, clientID string) (string, error) {
	client, err := s.ClientByID(ctx, clientID)
	if err != nil {
		return "", err
	}
	if client == nil {
		return unknownClient, nil
	}
	return client.FullName, nil
}
