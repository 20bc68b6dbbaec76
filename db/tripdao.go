package db

import (
	"errors"

	"github.com/ChitkulLakshya/PackPal/model"
	"gorm.io/gorm"
)

type TripDAO struct {
	db *gorm.DB
}

func NewTripDAO(db *gorm.DB) *TripDAO {
	return &TripDAO{db: db}
}

func (tripDAO *TripDAO) CreateTrip(tripDetails model.TripDetails) (model.TripDetails, error) {
	// create transaction
	transaction := tripDAO.db.Begin()
	if transaction.Error != nil {
		return model.TripDetails{}, transaction.Error
	}

	defer func() {
		if r := recover(); r != nil {
			transaction.Rollback()
			panic(r)
		} else if transaction.Error != nil {
			transaction.Rollback()
		}
	}()

	// create trip entry
	result := transaction.Create(&tripDetails.Trip)
	if result.Error != nil {
		return model.TripDetails{}, result.Error
	}

	// create destination entries
	for i := range tripDetails.Destinations {
		// set tripID on all destinations
		tripDetails.Destinations[i].TripID = tripDetails.Trip.TripID
		result = transaction.Create(&tripDetails.Destinations[i])
		if result.Error != nil {
			return model.TripDetails{}, result.Error
		}
	}

	// create travel option entries
	for i := range tripDetails.Options {
		tripDetails.Options[i].TripID = tripDetails.Trip.TripID
		result = transaction.Create(&tripDetails.Options[i])
		if result.Error != nil {
			return model.TripDetails{}, result.Error
		}
	}

	result = transaction.Commit()
	if result.Error != nil {
		return model.TripDetails{}, result.Error
	}

	return tripDetails, nil
}

func (tripDAO *TripDAO) GetTripsByUserId(userID int) ([]model.TripDetails, error) {
	var trips []model.Trip
	var tripDetailsList []model.TripDetails

	// get trips, newest first
	result := tripDAO.db.Where("id_user = ?", userID).Order("created_at DESC").Find(&trips)
	if result.Error != nil {
		return nil, result.Error
	}

	// get destinations and options for every trip
	for _, trip := range trips {
		destinations, options, err := tripDAO.getTripChildren(trip.TripID)
		if err != nil {
			return nil, err
		}

		tripDetailsList = append(tripDetailsList, model.TripDetails{
			Trip: trip, Destinations: destinations, Options: options,
		})
	}

	return tripDetailsList, nil
}

func (tripDAO *TripDAO) GetTripById(tripID int) (model.Trip, error) {
	var trip model.Trip
	result := tripDAO.db.First(&trip, tripID)
	return trip, result.Error
}

func (tripDAO *TripDAO) GetTripDetailsByTripID(tripID int) (model.TripDetails, error) {
	trip, err := tripDAO.GetTripById(tripID)
	if err != nil {
		return model.TripDetails{}, err
	}

	destinations, options, err := tripDAO.getTripChildren(trip.TripID)
	if err != nil {
		return model.TripDetails{}, err
	}

	return model.TripDetails{Trip: trip, Destinations: destinations, Options: options}, nil
}

func (tripDAO *TripDAO) getTripChildren(tripID int) ([]model.Destination, []model.TravelOption, error) {
	var destinations []model.Destination
	result := tripDAO.db.Where("id_trip = ?", tripID).Order("num_destination ASC").Find(&destinations)
	if result.Error != nil {
		return nil, nil, result.Error
	}

	var options []model.TravelOption
	result = tripDAO.db.Where("id_trip = ?", tripID).Find(&options)
	if result.Error != nil {
		return nil, nil, result.Error
	}

	return destinations, options, nil
}

// deleting a trip from db automatically deletes destinations and options (cascade)
func (tripDAO *TripDAO) DeleteTrip(tripID int) error {
	result := tripDAO.db.Delete(&model.Trip{}, tripID)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("trip not found")
	}

	return nil
}
