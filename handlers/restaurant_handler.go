package handlers

import (
	"context"
	"fmt"
	"strconv"
	"time"

	config "github.com/MateoDumas/ProntoClick-sub002/configs"
	"github.com/MateoDumas/ProntoClick-sub002/database"
	"github.com/MateoDumas/ProntoClick-sub002/models"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

type RestaurantRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"required,oneof=restaurant market"`
	ImageURL    *string `json:"image_url,omitempty"`
	DeliveryFee float64 `json:"delivery_fee" validate:"gte=0"`
	MinOrder    float64 `json:"min_order" validate:"gte=0"`
}

func ListRestaurants(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))
	offset := (page - 1) * pageSize

	query := database.DB.Where("is_active = ?", true).Order("rating desc")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var restaurants []models.Restaurant
	if err := query.Limit(pageSize).Offset(offset).Find(&restaurants).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch restaurants"})
	}

	return c.JSON(restaurants)
}

func GetRestaurant(c *fiber.Ctx) error {
	restaurantID := c.Params("restaurantId")

	var restaurant models.Restaurant
	if err := database.DB.Preload("Products", "is_available = ?", true).First(&restaurant, "id = ?", restaurantID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Restaurant not found"})
	}

	return c.JSON(restaurant)
}

func CreateRestaurant(c *fiber.Ctx) error {
	var req RestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	restaurant := models.Restaurant{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		DeliveryFee: req.DeliveryFee,
		MinOrder:    req.MinOrder,
	}

	if err := database.DB.Create(&restaurant).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create restaurant"})
	}

	return c.Status(fiber.StatusCreated).JSON(restaurant)
}

func UpdateRestaurant(c *fiber.Ctx) error {
	restaurantID := c.Params("restaurantId")

	var restaurant models.Restaurant
	if err := database.DB.First(&restaurant, "id = ?", restaurantID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Restaurant not found"})
	}

	var req RestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	restaurant.Name = req.Name
	restaurant.Description = req.Description
	restaurant.Category = req.Category
	restaurant.DeliveryFee = req.DeliveryFee
	restaurant.MinOrder = req.MinOrder
	if req.ImageURL != nil {
		restaurant.ImageURL = req.ImageURL
	}
	database.DB.Save(&restaurant)

	return c.JSON(restaurant)
}

func DeactivateRestaurant(c *fiber.Ctx) error {
	restaurantID := c.Params("restaurantId")

	result := database.DB.Model(&models.Restaurant{}).Where("id = ?", restaurantID).Update("is_active", false)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate restaurant"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Restaurant not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UploadRestaurantImage replaces a restaurant's storefront image with a
// freshly uploaded one hosted on Cloudinary.
func UploadRestaurantImage(c *fiber.Ctx) error {
	restaurantID := c.Params("restaurantId")

	var restaurant models.Restaurant
	if err := database.DB.First(&restaurant, "id = ?", restaurantID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Restaurant not found"})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Image file is required."})
	}

	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize Cloudinary"})
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadResult, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   "prontoclick_restaurants",
		PublicID: fmt.Sprintf("restaurant_%s", restaurantID),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload image."})
	}

	restaurant.ImageURL = &uploadResult.SecureURL
	database.DB.Save(&restaurant)

	return c.JSON(restaurant)
}
