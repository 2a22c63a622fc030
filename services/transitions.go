package services

import (
	"github.com/seatwise/seating-app/models"
)

// Status transition rules untuk assignment workflow. Semua perubahan status
// lintas entity (Table/Party/Reservation) dideklarasikan di sini sebagai
// write-set eksplisit, bukan mutasi bebas di business logic, supaya aturannya
// bisa diuji tanpa storage.

// SeatingEffects adalah write-set status yang harus diterapkan engine dalam
// satu transaksi. Field nil berarti entity terkait tidak disentuh.
type SeatingEffects struct {
	TableStatus       *models.TableStatus
	PartyStatus       *models.PartyStatus
	ReservationStatus *models.ReservationStatus
}

func tableStatusPtr(s models.TableStatus) *models.TableStatus { return &s }

func partyStatusPtr(s models.PartyStatus) *models.PartyStatus { return &s }

func reservationStatusPtr(s models.ReservationStatus) *models.ReservationStatus { return &s }

// checkTableAssignable memastikan meja ada dan AVAILABLE.
func checkTableAssignable(table *models.Table) error {
	if table == nil || table.Status != models.TableAvailable {
		return invalidState("Table is not available for assignment")
	}
	return nil
}

// checkPartyAssignable memastikan party ada dan WAITING.
func checkPartyAssignable(party *models.Party) error {
	if party == nil || party.Status != models.PartyWaiting {
		return invalidState("Party is not available for assignment")
	}
	return nil
}

// checkReservationAssignable memastikan reservasi ada dan CONFIRMED.
func checkReservationAssignable(reservation *models.Reservation) error {
	if reservation == nil || reservation.Status != models.ReservationConfirmed {
		return invalidState("Reservation is not available for assignment")
	}
	return nil
}

// checkServerAssignable memastikan server ada dan aktif.
func checkServerAssignable(server *models.Server) error {
	if server == nil || !server.IsActive {
		return invalidState("Server is not available for assignment")
	}
	return nil
}

// seatPartyEffects: table assignment dibuat -> meja OCCUPIED, party SEATED.
func seatPartyEffects() SeatingEffects {
	return SeatingEffects{
		TableStatus: tableStatusPtr(models.TableOccupied),
		PartyStatus: partyStatusPtr(models.PartySeated),
	}
}

// holdTableEffects: reservation assignment dibuat -> meja RESERVED.
// Reservasi di-set ulang CONFIRMED (no-op, perilaku sumber dipertahankan).
func holdTableEffects() SeatingEffects {
	return SeatingEffects{
		TableStatus:       tableStatusPtr(models.TableReserved),
		ReservationStatus: reservationStatusPtr(models.ReservationConfirmed),
	}
}

// completeTableAssignmentEffects: satu-satunya jalur yang menutup lifecycle
// party. Meja masuk CLEANING, bukan langsung AVAILABLE.
func completeTableAssignmentEffects() SeatingEffects {
	return SeatingEffects{
		TableStatus: tableStatusPtr(models.TableCleaning),
		PartyStatus: partyStatusPtr(models.PartyFinished),
	}
}

// completeReservationAssignmentEffects: meja CLEANING, reservasi COMPLETED.
func completeReservationAssignmentEffects() SeatingEffects {
	return SeatingEffects{
		TableStatus:       tableStatusPtr(models.TableCleaning),
		ReservationStatus: reservationStatusPtr(models.ReservationCompleted),
	}
}

// patchCompletedEffects: update biasa dengan status COMPLETED hanya memindah
// meja ke CLEANING. Party/Reservation TIDAK disentuh di jalur ini; asimetri
// terhadap Complete* dipertahankan dari perilaku sumber.
func patchCompletedEffects() SeatingEffects {
	return SeatingEffects{
		TableStatus: tableStatusPtr(models.TableCleaning),
	}
}

// releaseTableEffects: delete assignment selalu mengembalikan meja ke
// AVAILABLE apapun status assignment-nya. Party tidak disentuh.
func releaseTableEffects() SeatingEffects {
	return SeatingEffects{
		TableStatus: tableStatusPtr(models.TableAvailable),
	}
}
