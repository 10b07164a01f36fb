package bot

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"deutschprofi_backend/internal/game"
	"deutschprofi_backend/internal/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// AdminBot - операторский интерфейс через Telegram: просмотр живых
// сессий без доступа к HTTP API. Игровое состояние он только читает
type AdminBot struct {
	bot      *tgbotapi.BotAPI
	store    *game.Store
	adminIDs []int64
	stopCh   chan struct{}
	wg       sync.WaitGroup
	log      *slog.Logger
}

func NewAdminBot(token string, store *game.Store, adminIDs []int64) (*AdminBot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log := logger.With("component", "admin_bot")
	log.Info("admin bot authorized", "username", api.Self.UserName)

	return &AdminBot{
		bot:      api,
		store:    store,
		adminIDs: adminIDs,
		stopCh:   make(chan struct{}),
		log:      log,
	}, nil
}

// Start запускает цикл обработки команд, блокируется до Stop()
func (b *AdminBot) Start() {
	b.wg.Add(1)
	defer b.wg.Done()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-b.stopCh:
			b.bot.StopReceivingUpdates()
			return
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			b.handleMessage(update.Message)
		}
	}
}

func (b *AdminBot) Stop() {
	close(b.stopCh)
	b.wg.Wait()
}

func (b *AdminBot) isAdmin(userID int64) bool {
	for _, id := range b.adminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func (b *AdminBot) handleMessage(msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		b.log.Warn("ignoring non-admin message", "from", msg.From.ID)
		return
	}

	switch {
	case msg.Command() == "sessions":
		b.reply(msg.Chat.ID, b.renderSessions())
	case msg.Command() == "session":
		code := strings.TrimSpace(msg.CommandArguments())
		if code == "" {
			b.reply(msg.Chat.ID, "Использование: /session <КОД>")
			return
		}
		b.reply(msg.Chat.ID, b.renderSession(strings.ToUpper(code)))
	case msg.Command() == "stats":
		b.reply(msg.Chat.ID, fmt.Sprintf("Сессий в памяти: %d", b.store.Len()))
	case msg.Command() == "start", msg.Command() == "help":
		b.reply(msg.Chat.ID, "Команды:\n/sessions - список сессий\n/session <КОД> - детали сессии\n/stats - счётчики")
	}
}

func (b *AdminBot) renderSessions() string {
	sessions := b.store.All()
	if len(sessions) == 0 {
		return "Активных сессий нет"
	}

	var sb strings.Builder
	for _, s := range sessions {
		snap := s.Snapshot()
		sb.WriteString(fmt.Sprintf("%s  %s  игроков=%d  задание=%d/%d  %s\n",
			snap.Code, snap.Config.GameMode, len(snap.Players),
			snap.CurrentTask, len(snap.Tasks), stateLabel(snap.IsStarted, snap.IsFinished)))
	}
	return sb.String()
}

// renderSession ищет по коду в любом состоянии - операторский путь,
// в отличие от входа игроков он видит и начавшиеся сессии
func (b *AdminBot) renderSession(code string) string {
	s, ok := b.store.FindByCode(code)
	if !ok {
		return "Сессия с таким кодом не найдена"
	}

	snap := s.Snapshot()
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Сессия %s (%s)\n", snap.Code, snap.ID))
	sb.WriteString(fmt.Sprintf("Режим: %s, сложность: %s, заданий: %d\n",
		snap.Config.GameMode, snap.Config.Difficulty, len(snap.Tasks)))
	sb.WriteString(fmt.Sprintf("Состояние: %s, текущее задание: %d\n",
		stateLabel(snap.IsStarted, snap.IsFinished), snap.CurrentTask))
	sb.WriteString("Игроки:\n")
	if len(snap.Players) == 0 {
		sb.WriteString("  (пока никого)\n")
	}
	for _, p := range snap.Players {
		mark := " "
		if p.HasSubmittedCurrentTask {
			mark = "+"
		}
		sb.WriteString(fmt.Sprintf("  [%s] %s - %d очков\n", mark, p.Name, p.Score))
	}
	return sb.String()
}

func stateLabel(started, finished bool) string {
	switch {
	case finished:
		return "завершена"
	case started:
		return "идёт"
	default:
		return "ожидание"
	}
}

func (b *AdminBot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.bot.Send(msg); err != nil {
		b.log.Error("send reply", "error", err)
	}
}
