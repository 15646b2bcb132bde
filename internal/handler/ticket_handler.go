package handler

import (
	"event-voting/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service service.TicketService
}

func NewTicketHandler(service service.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) RegisterRoutes(routes *Routes) {
	routes.Client.POST("tickets/auth", h.Authenticate)
	routes.Voter.GET("tickets/verify", h.Verify)

	admin := routes.Admin.Group("tickets")
	{
		admin.GET("", h.List)
		admin.POST("generate", h.Generate)
		admin.POST("import", h.Import)
		admin.GET(":serial", h.GetBySerial)
		admin.DELETE(":serial", h.DeleteBySerial)
		admin.DELETE("", h.DeleteAll)
	}
}

// AuthenticateRequest 票券登入請求（QR code 內容）
type AuthenticateRequest struct {
	TicketID string `json:"ticket_id" binding:"required"`
}

type GenerateTicketsRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type ImportTicketsRequest struct {
	Serials        []string `json:"serials" binding:"required,min=1"`
	SkipDuplicates bool     `json:"skip_duplicates"`
}

func (h *TicketHandler) Authenticate(c *gin.Context) {
	var req AuthenticateRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	result, err := h.service.Authenticate(c, req.TicketID)
	if err != nil {
		handleError(c, err, "Authenticate")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *TicketHandler) Verify(c *gin.Context) {
	cred, err := voterCredential(c)
	if err != nil {
		handleError(c, err, "Verify")
		return
	}

	ticket, err := h.service.Verify(c, cred)
	if err != nil {
		handleError(c, err, "Verify")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

func (h *TicketHandler) List(c *gin.Context) {
	tickets, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "ListTickets")
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (h *TicketHandler) Generate(c *gin.Context) {
	var req GenerateTicketsRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	tickets, err := h.service.Generate(c, req.Quantity)
	if err != nil {
		handleError(c, err, "GenerateTickets")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"count":   len(tickets),
		"tickets": tickets,
	})
}

func (h *TicketHandler) Import(c *gin.Context) {
	var req ImportTicketsRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	result, err := h.service.Import(c, req.Serials, req.SkipDuplicates)
	if err != nil {
		handleError(c, err, "ImportTickets")
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *TicketHandler) GetBySerial(c *gin.Context) {
	ticket, err := h.service.GetBySerial(c, c.Param("serial"))
	if err != nil {
		handleError(c, err, "GetTicketBySerial")
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) DeleteBySerial(c *gin.Context) {
	if err := h.service.DeleteBySerial(c, c.Param("serial")); err != nil {
		handleError(c, err, "DeleteTicketBySerial")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TicketHandler) DeleteAll(c *gin.Context) {
	count, err := h.service.DeleteAll(c)
	if err != nil {
		handleError(c, err, "DeleteAllTickets")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": count})
}
