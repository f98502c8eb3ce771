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

func GetTables(c *fiber.Ctx) error {
	db := database.DB

	var tables []model.Table
	if err := db.Order("number ASC").Find(&tables).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch tables", nil)
	}

	return c.JSON(fiber.Map{
		"tables": tables,
		"count":  len(tables),
	})
}

func CreateTable(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateTableInput)
	db := database.DB

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	table := model.Table{
		Number:          input.Number,
		Name:            input.Name,
		MinCapacity:     input.MinCapacity,
		OptimalCapacity: input.OptimalCapacity,
		MaxCapacity:     input.MaxCapacity,
		Section:         input.Section,
		Active:          active,
		Notes:           input.Notes,
	}

	if err := db.Create(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create table", nil)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"table":   table,
		"message": "Table created successfully",
	})
}

func UpdateTable(c *fiber.Ctx) error {
	id := c.Locals("inputId").(string)
	input := c.Locals("input").(model.UpdateTableInput)
	db := database.DB

	var table model.Table
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&table, "id = ?", id).Error; err != nil {
			return err
		}
		if err := copier.CopyWithOption(&table, &input, copier.Option{IgnoreEmpty: true}); err != nil {
			return err
		}
		if !table.CapacityOrderingValid() {
			return errCapacityOrdering
		}
		table.UpdatedAt = time.Now()
		return tx.Save(&table).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Table not found", nil)
		}
		if errors.Is(err, errCapacityOrdering) {
			return utils.ErrorResponseWithDetails(c, fiber.StatusBadRequest, "Invalid table data", err,
				[]string{"optimalCapacity: must satisfy minCapacity <= optimalCapacity <= maxCapacity"})
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update table", nil)
	}

	return c.JSON(fiber.Map{
		"table":   table,
		"message": "Table updated successfully",
	})
}

var errCapacityOrdering = errors.New("capacity ordering violated")

func DeleteTable(c *fiber.Ctx) error {
	id := c.Locals("inputId").(string)
	db := database.DB

	var table model.Table
	if err := db.First(&table, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Table not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete table", nil)
	}

	if err := db.Delete(&model.Table{}, "id = ?", id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete table", nil)
	}

	return c.JSON(fiber.Map{
		"table":   table,
		"message": "Table deleted successfully",
	})
}
