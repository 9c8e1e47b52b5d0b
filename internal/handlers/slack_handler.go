package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain"
	"github.com/diegoclair/gpns-planner/internal/domain/contract"
	"github.com/diegoclair/gpns-planner/internal/domain/service"
	slackcmd "github.com/diegoclair/gpns-planner/internal/domain/slack"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackHandler struct {
	planning      contract.PlanningService
	subscriptions contract.SubscriptionService
	signingSecret string
	log           *zap.Logger
	now           func() time.Time
}

func New(planning contract.PlanningService, subscriptions contract.SubscriptionService, signingSecret string, log *zap.Logger) *SlackHandler {
	return &SlackHandler{
		planning:      planning,
		subscriptions: subscriptions,
		signingSecret: signingSecret,
		log:           log.Named("slack"),
		now:           time.Now,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn("invalid Slack signature", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error()+". Tapez `/planning help` pour l'aide.")
		return
	}

	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdToday:
		return h.handleToday(ctx, cmd, slashCmd)
	case slackcmd.CmdWeek:
		return h.handleWeek(ctx, cmd, slashCmd)
	case slackcmd.CmdSubscribe:
		return h.handleSubscribe(cmd, slashCmd)
	case slackcmd.CmdUnsubscribe:
		return h.handleUnsubscribe(slashCmd)
	case slackcmd.CmdPause:
		return h.handlePause(slashCmd)
	case slackcmd.CmdResume:
		return h.handleResume(slashCmd)
	case slackcmd.CmdStatus:
		return h.handleStatus(slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Commande non reconnue")
	}
}

// templateFor picks the template named in the command, or the one the
// channel is subscribed to.
func (h *SlackHandler) templateFor(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) (string, *slack.Msg) {
	if name := cmd.Arg(0); name != "" {
		return name, nil
	}

	sub, err := h.subscriptions.Subscription(slashCmd.ChannelID)
	if err != nil {
		h.log.Error("failed to get subscription", zap.String("channel", slashCmd.ChannelID), zap.Error(err))
		return "", h.createErrorResponse("Erreur lors de la lecture de l'abonnement du canal")
	}
	if sub == nil {
		return "", h.createErrorResponse("Précisez un modèle : `/planning " + string(cmd.Type) + " MODÈLE`")
	}
	return sub.Template, nil
}

func (h *SlackHandler) handleToday(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	name, errMsg := h.templateFor(cmd, slashCmd)
	if errMsg != nil {
		return errMsg
	}

	now := h.now()
	task, err := h.planning.Today(ctx, name, now)
	if err != nil {
		return h.serviceError(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.FormatDayTask(name, now.Format(domain.DateLayout), task),
	}
}

func (h *SlackHandler) handleWeek(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	name, errMsg := h.templateFor(cmd, slashCmd)
	if errMsg != nil {
		return errMsg
	}

	days, err := h.planning.Week(ctx, name, h.now())
	if err != nil {
		return h.serviceError(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.FormatWeek(name, days),
	}
}

func (h *SlackHandler) handleSubscribe(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Précisez un modèle : `/planning subscribe MODÈLE [HH:MM]`")
	}

	sub, err := h.subscriptions.Subscribe(slashCmd.ChannelID, cmd.Arg(0), cmd.Arg(1))
	if err != nil {
		return h.serviceError(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Ce canal recevra le planning *%s* chaque jour ouvré à %s.", sub.Template, sub.NotificationTime),
	}
}

func (h *SlackHandler) handleUnsubscribe(slashCmd *slack.SlashCommand) *slack.Msg {
	if err := h.subscriptions.Unsubscribe(slashCmd.ChannelID); err != nil {
		return h.serviceError(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "🗑️ Rappel quotidien supprimé pour ce canal.",
	}
}

func (h *SlackHandler) handlePause(slashCmd *slack.SlashCommand) *slack.Msg {
	if err := h.subscriptions.Pause(slashCmd.ChannelID); err != nil {
		return h.serviceError(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "⏸️ Rappels suspendus. Utilisez `/planning resume` pour les reprendre.",
	}
}

func (h *SlackHandler) handleResume(slashCmd *slack.SlashCommand) *slack.Msg {
	if err := h.subscriptions.Resume(slashCmd.ChannelID); err != nil {
		return h.serviceError(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "▶️ Rappels repris.",
	}
}

func (h *SlackHandler) handleStatus(slashCmd *slack.SlashCommand) *slack.Msg {
	sub, err := h.subscriptions.Subscription(slashCmd.ChannelID)
	if err != nil {
		return h.serviceError(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.FormatSubscription(sub),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// serviceError turns domain errors into user messages. Unexpected errors
// are logged and hidden.
func (h *SlackHandler) serviceError(err error) *slack.Msg {
	switch {
	case errors.Is(err, service.ErrTemplateNotFound):
		return h.createErrorResponse(fmt.Sprintf("Modèle inconnu. Modèles disponibles : %s", h.templateNames()))
	case errors.Is(err, service.ErrInvalidTime):
		return h.createErrorResponse("Heure invalide, utilisez HH:MM (ex : 07:30)")
	case errors.Is(err, service.ErrNotSubscribed):
		return h.createErrorResponse("Aucun rappel configuré pour ce canal")
	}

	h.log.Error("slash command failed", zap.Error(err))
	return h.createErrorResponse("Une erreur est survenue, réessayez plus tard")
}

func (h *SlackHandler) templateNames() string {
	templates := h.planning.Templates()
	names := make([]string, 0, len(templates))
	for _, t := range templates {
		names = append(names, t.Name)
	}
	return strings.Join(names, ", ")
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
