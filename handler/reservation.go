package handler

import (
	"errors"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetReservations(c *fiber.Ctx) error {
	db := database.DB

	var reservations []model.Reservation
	if err := db.Find(&reservations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch reservations", nil)
	}

	return c.JSON(fiber.Map{
		"reservations": reservations,
		"count":        len(reservations),
	})
}

func CreateReservation(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateReservationInput)
	db := database.DB

	status := input.Status
	if status == "" {
		status = model.StatusPending
	}

	reservation := model.Reservation{
		Date:      input.Date,
		Duration:  input.Duration,
		PartySize: input.PartySize,
		Customer: model.Customer{
			Name:  input.Customer.Name,
			Phone: input.Customer.Phone,
			Email: input.Customer.Email,
			Notes: input.Customer.Notes,
		},
		TableIds:      input.TableIds,
		Category:      input.Category,
		Status:        status,
		CreatedBy:     input.CreatedBy,
		Source:        input.Source,
		Tags:          input.Tags,
		InternalNotes: input.InternalNotes,
	}

	if err := db.Create(&reservation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create reservation", nil)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"reservation": reservation,
		"message":     "Reservation created successfully",
	})
}

func UpdateReservation(c *fiber.Ctx) error {
	id := c.Locals("inputId").(string)
	input := c.Locals("input").(model.UpdateReservationInput)
	db := database.DB

	var reservation model.Reservation
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, "id = ?", id).Error; err != nil {
			return err
		}
		if err := copier.CopyWithOption(&reservation, &input, copier.Option{IgnoreEmpty: true}); err != nil {
			return err
		}
		reservation.UpdatedAt = time.Now()
		return tx.Save(&reservation).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update reservation", nil)
	}

	return c.JSON(fiber.Map{
		"reservation": reservation,
		"message":     "Reservation updated successfully",
	})
}

func DeleteReservation(c *fiber.Ctx) error {
	id := c.Locals("inputId").(string)
	db := database.DB

	var reservation model.Reservation
	if err := db.First(&reservation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete reservation", nil)
	}

	if err := db.Delete(&model.Reservation{}, "id = ?", id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete reservation", nil)
	}

	return c.JSON(fiber.Map{
		"reservation": reservation,
		"message":     "Reservation deleted successfully",
	})
}
