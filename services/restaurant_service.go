package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/seatwise/seating-app/models"
	"github.com/seatwise/seating-app/utils"
)

// RestaurantService menangani CRUD restoran, section, dan meja, plus
// pengecekan ketersediaan meja dan analitik okupansi.
type RestaurantService struct {
	db *gorm.DB
}

func NewRestaurantService(db *gorm.DB) *RestaurantService {
	return &RestaurantService{db: db}
}

type RestaurantCreate struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	OpeningTime string `json:"opening_time" binding:"required"`
	ClosingTime string `json:"closing_time" binding:"required"`
	MaxCapacity int    `json:"max_capacity" binding:"required,min=1"`
}

type RestaurantPatch struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	OpeningTime *string `json:"opening_time"`
	ClosingTime *string `json:"closing_time"`
	MaxCapacity *int    `json:"max_capacity"`
}

type SectionCreate struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Capacity    int     `json:"capacity" binding:"required,min=1"`
	IsActive    *bool   `json:"is_active"`
}

type SectionPatch struct {
	Name        *string                `json:"name"`
	Description utils.Optional[string] `json:"description"`
	Capacity    *int                   `json:"capacity"`
	IsActive    *bool                  `json:"is_active"`
}

type TableCreate struct {
	TableNumber string             `json:"table_number" binding:"required"`
	Capacity    int                `json:"capacity" binding:"required,min=1"`
	Location    string             `json:"location" binding:"required"`
	IsActive    *bool              `json:"is_active"`
	Status      models.TableStatus `json:"status"`
	SectionIDs  []string           `json:"section_ids"`
}

type TablePatch struct {
	TableNumber *string             `json:"table_number"`
	Capacity    *int                `json:"capacity"`
	Location    *string             `json:"location"`
	IsActive    *bool               `json:"is_active"`
	Status      *models.TableStatus `json:"status"`
	SectionIDs  []string            `json:"section_ids"`
}

type TableFilter struct {
	RestaurantID string
	SectionID    string
	Status       string
}

// TableAvailability adalah hasil cek ketersediaan: daftar meja yang muat
// plus estimasi tunggu (menit) bila tidak ada.
type TableAvailability struct {
	AvailableTables   []models.Table `json:"available_tables"`
	EstimatedWaitTime *int           `json:"estimated_wait_time,omitempty"`
}

type OccupancyAnalytics struct {
	CurrentOccupancy float64  `json:"current_occupancy"`
	AverageOccupancy float64  `json:"average_occupancy"`
	PeakHours        []string `json:"peak_hours"`
	TotalTables      int64    `json:"total_tables"`
	OccupiedTables   int64    `json:"occupied_tables"`
}

// Restaurant CRUD

func (s *RestaurantService) CreateRestaurant(input RestaurantCreate) (*models.Restaurant, error) {
	restaurant := models.Restaurant{
		Name:        input.Name,
		Address:     input.Address,
		Phone:       input.Phone,
		OpeningTime: input.OpeningTime,
		ClosingTime: input.ClosingTime,
		MaxCapacity: input.MaxCapacity,
	}
	if err := s.db.Create(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (s *RestaurantService) GetRestaurant(id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &restaurant, nil
}

// GetRestaurants mengembalikan daftar restoran terpaginasi beserta total.
func (s *RestaurantService) GetRestaurants(limit, offset int) ([]models.Restaurant, int64, error) {
	var total int64
	if err := s.db.Model(&models.Restaurant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var restaurants []models.Restaurant
	if err := s.db.Offset(offset).Limit(limit).Find(&restaurants).Error; err != nil {
		return nil, 0, err
	}
	return restaurants, total, nil
}

func (s *RestaurantService) UpdateRestaurant(id string, patch RestaurantPatch) (*models.Restaurant, error) {
	restaurant, err := s.GetRestaurant(id)
	if err != nil || restaurant == nil {
		return nil, err
	}

	if patch.Name != nil {
		restaurant.Name = *patch.Name
	}
	if patch.Address != nil {
		restaurant.Address = *patch.Address
	}
	if patch.Phone != nil {
		restaurant.Phone = *patch.Phone
	}
	if patch.OpeningTime != nil {
		restaurant.OpeningTime = *patch.OpeningTime
	}
	if patch.ClosingTime != nil {
		restaurant.ClosingTime = *patch.ClosingTime
	}
	if patch.MaxCapacity != nil {
		restaurant.MaxCapacity = *patch.MaxCapacity
	}

	if err := s.db.Save(restaurant).Error; err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (s *RestaurantService) DeleteRestaurant(id string) (bool, error) {
	restaurant, err := s.GetRestaurant(id)
	if err != nil || restaurant == nil {
		return false, err
	}
	if err := s.db.Delete(restaurant).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Sections

func (s *RestaurantService) CreateSection(restaurantID string, input SectionCreate) (*models.Section, error) {
	section := models.Section{
		Name:         input.Name,
		Description:  input.Description,
		Capacity:     input.Capacity,
		IsActive:     true,
		RestaurantID: restaurantID,
	}
	if input.IsActive != nil {
		section.IsActive = *input.IsActive
	}
	if err := s.db.Create(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (s *RestaurantService) GetSection(id string) (*models.Section, error) {
	var section models.Section
	if err := s.db.First(&section, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &section, nil
}

func (s *RestaurantService) GetSections(restaurantID string) ([]models.Section, error) {
	query := s.db.Model(&models.Section{})
	if restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	var sections []models.Section
	if err := query.Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

func (s *RestaurantService) UpdateSection(id string, patch SectionPatch) (*models.Section, error) {
	section, err := s.GetSection(id)
	if err != nil || section == nil {
		return nil, err
	}

	if patch.Name != nil {
		section.Name = *patch.Name
	}
	if patch.Description.Set {
		section.Description = patch.Description.Value
	}
	if patch.Capacity != nil {
		section.Capacity = *patch.Capacity
	}
	if patch.IsActive != nil {
		section.IsActive = *patch.IsActive
	}

	if err := s.db.Save(section).Error; err != nil {
		return nil, err
	}
	return section, nil
}

func (s *RestaurantService) DeleteSection(id string) (bool, error) {
	section, err := s.GetSection(id)
	if err != nil || section == nil {
		return false, err
	}
	if err := s.db.Delete(section).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Tables

func (s *RestaurantService) CreateTable(restaurantID string, input TableCreate) (*models.Table, error) {
	table := models.Table{
		TableNumber:  input.TableNumber,
		Capacity:     input.Capacity,
		Location:     input.Location,
		IsActive:     true,
		Status:       models.TableAvailable,
		RestaurantID: restaurantID,
	}
	if input.IsActive != nil {
		table.IsActive = *input.IsActive
	}
	if input.Status != "" {
		table.Status = input.Status
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	if err := tx.Create(&table).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	for _, sectionID := range input.SectionIDs {
		link := models.TableSection{TableID: table.ID, SectionID: sectionID}
		if err := tx.Create(&link).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (s *RestaurantService) GetTable(id string) (*models.Table, error) {
	return findTable(s.db, id)
}

func (s *RestaurantService) GetTables(filter TableFilter) ([]models.Table, error) {
	query := s.db.Model(&models.Table{})
	if filter.RestaurantID != "" {
		query = query.Where("tables.restaurant_id = ?", filter.RestaurantID)
	}
	if filter.SectionID != "" {
		query = query.Joins("JOIN table_sections ON table_sections.table_id = tables.id").
			Where("table_sections.section_id = ?", filter.SectionID)
	}
	if filter.Status != "" {
		query = query.Where("tables.status = ?", filter.Status)
	}

	var tables []models.Table
	if err := query.Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (s *RestaurantService) UpdateTable(id string, patch TablePatch) (*models.Table, error) {
	table, err := s.GetTable(id)
	if err != nil || table == nil {
		return nil, err
	}

	if patch.TableNumber != nil {
		table.TableNumber = *patch.TableNumber
	}
	if patch.Capacity != nil {
		table.Capacity = *patch.Capacity
	}
	if patch.Location != nil {
		table.Location = *patch.Location
	}
	if patch.IsActive != nil {
		table.IsActive = *patch.IsActive
	}
	if patch.Status != nil {
		table.Status = *patch.Status
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	if err := tx.Save(table).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if patch.SectionIDs != nil {
		if err := tx.Where("table_id = ?", table.ID).Delete(&models.TableSection{}).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		for _, sectionID := range patch.SectionIDs {
			link := models.TableSection{TableID: table.ID, SectionID: sectionID}
			if err := tx.Create(&link).Error; err != nil {
				tx.Rollback()
				return nil, err
			}
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return table, nil
}

func (s *RestaurantService) DeleteTable(id string) (bool, error) {
	table, err := s.GetTable(id)
	if err != nil || table == nil {
		return false, err
	}
	if err := s.db.Delete(table).Error; err != nil {
		return false, err
	}
	return true, nil
}

// MarkTableClean mengembalikan meja CLEANING ke AVAILABLE (housekeeping).
func (s *RestaurantService) MarkTableClean(id string) (*models.Table, error) {
	table, err := s.GetTable(id)
	if err != nil || table == nil {
		return nil, err
	}
	if table.Status != models.TableCleaning {
		return nil, invalidState("Table is not waiting for cleaning")
	}

	table.Status = models.TableAvailable
	if err := s.db.Save(table).Error; err != nil {
		return nil, err
	}
	return table, nil
}

// CheckTableAvailability mencari meja AVAILABLE yang aktif dan muat untuk
// party_size. Bila kosong, estimasi tunggu dihitung kasar dari okupansi.
func (s *RestaurantService) CheckTableAvailability(restaurantID string, partySize int) (*TableAvailability, error) {
	var available []models.Table
	err := s.db.Where("restaurant_id = ? AND is_active = ? AND status = ? AND capacity >= ?",
		restaurantID, true, models.TableAvailable, partySize).Find(&available).Error
	if err != nil {
		return nil, err
	}

	result := &TableAvailability{AvailableTables: available}
	if len(available) == 0 {
		var totalTables, occupiedTables int64
		if err := s.db.Model(&models.Table{}).Where("restaurant_id = ?", restaurantID).Count(&totalTables).Error; err != nil {
			return nil, err
		}
		if err := s.db.Model(&models.Table{}).
			Where("restaurant_id = ? AND status IN ?", restaurantID,
				[]models.TableStatus{models.TableOccupied, models.TableReserved}).
			Count(&occupiedTables).Error; err != nil {
			return nil, err
		}
		if totalTables > 0 {
			estimate := int(float64(occupiedTables) / float64(totalTables) * 60)
			result.EstimatedWaitTime = &estimate
		}
	}
	return result, nil
}

// GetOccupancyAnalytics menghitung okupansi lantai saat ini.
func (s *RestaurantService) GetOccupancyAnalytics(restaurantID string) (*OccupancyAnalytics, error) {
	var totalTables, occupiedTables int64
	if err := s.db.Model(&models.Table{}).Where("restaurant_id = ?", restaurantID).Count(&totalTables).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Table{}).
		Where("restaurant_id = ? AND status IN ?", restaurantID,
			[]models.TableStatus{models.TableOccupied, models.TableReserved}).
		Count(&occupiedTables).Error; err != nil {
		return nil, err
	}

	var current float64
	if totalTables > 0 {
		current = float64(occupiedTables) / float64(totalTables) * 100
	}

	return &OccupancyAnalytics{
		CurrentOccupancy: current,
		AverageOccupancy: current,
		PeakHours:        []string{"19:00", "20:00", "21:00"},
		TotalTables:      totalTables,
		OccupiedTables:   occupiedTables,
	}, nil
}
