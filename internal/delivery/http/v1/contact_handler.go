package v1

import (
	"net/http"

	"go-talenthub-backend/internal/delivery/http/response"
	"go-talenthub-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

func NewContactHandler(protected *gin.RouterGroup, contactUC domain.ContactUsecase, rateLimit gin.HandlerFunc) {
	handler := &ContactHandler{contactUC: contactUC}

	protected.POST("/users/:id/contact", rateLimit, handler.ContactUser)
}

// ContactUser godoc
// @Summary      Contact a user
// @Description  Opens the existing private conversation with the user, or starts a new one. Returns the chat, a redirect target and a notification to display.
// @Tags         contact
// @Produce      json
// @Param        id   path      string  true  "Target user ID"
// @Success      200  {object}  response.Response{data=domain.ContactResult}
// @Success      201  {object}  response.Response{data=domain.ContactResult}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id}/contact [post]
// @Security     BearerAuth
func (h *ContactHandler) ContactUser(c *gin.Context) {
	targetID := c.Param("id")

	result, err := h.contactUC.ContactUser(c.Request.Context(), targetID)
	if err != nil {
		c.Error(err)
		return
	}

	code := http.StatusOK
	if result.Created {
		code = http.StatusCreated
	}
	response.Success(c, code, result.Notification.Title, result)
}
