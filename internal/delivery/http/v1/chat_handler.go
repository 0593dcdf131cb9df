package v1

import (
	"net/http"

	"go-talenthub-backend/internal/delivery/http/response"
	"go-talenthub-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	contactUC domain.ContactUsecase
}

func NewChatHandler(protected *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ChatHandler{contactUC: contactUC}

	protected.GET("/chats", handler.List)
}

// ListChats godoc
// @Summary      List own conversations
// @Description  All private conversations the session user participates in, newest first
// @Tags         chats
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /chats [get]
// @Security     BearerAuth
func (h *ChatHandler) List(c *gin.Context) {
	chats, err := h.contactUC.ListChats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Chat list", gin.H{
		"chats": chats,
		"total": len(chats),
	})
}
