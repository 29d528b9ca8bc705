package tracking

import (
	"time"

	"parcelmarket/internal/entities"
)

func FromDomainModify(logModify *entities.TrackingLogModify, at time.Time) *TrackingLogDB {
	if logModify == nil {
		return nil
	}

	logDB := &TrackingLogDB{
		Time: at,
	}
	if logModify.TrackingID != nil {
		logDB.TrackingID = *logModify.TrackingID
	}
	if logModify.ParcelID != nil {
		logDB.ParcelID = *logModify.ParcelID
	}
	if logModify.Status != nil {
		logDB.Status = *logModify.Status
	}
	if logModify.Message != nil {
		logDB.Message = *logModify.Message
	}
	if logModify.UpdatedBy != nil {
		logDB.UpdatedBy = *logModify.UpdatedBy
	}

	return logDB
}
