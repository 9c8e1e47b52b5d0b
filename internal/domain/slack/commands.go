package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdToday       CommandType = "today"
	CmdWeek        CommandType = "week"
	CmdSubscribe   CommandType = "subscribe"
	CmdUnsubscribe CommandType = "unsubscribe"
	CmdPause       CommandType = "pause"
	CmdResume      CommandType = "resume"
	CmdStatus      CommandType = "status"
	CmdHelp        CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// ParseCommand parses the text of a /planning slash command. French
// aliases are accepted for the daily commands.
func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw:  text,
		Args: parts[1:],
	}

	switch strings.ToLower(parts[0]) {
	case "today", "aujourdhui", "jour":
		cmd.Type = CmdToday
	case "week", "semaine":
		cmd.Type = CmdWeek
	case "subscribe", "sub":
		cmd.Type = CmdSubscribe
	case "unsubscribe", "unsub":
		cmd.Type = CmdUnsubscribe
	case "pause":
		cmd.Type = CmdPause
	case "resume":
		cmd.Type = CmdResume
	case "status":
		cmd.Type = CmdStatus
	case "help", "aide":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("commande inconnue : %s", parts[0])
	}

	if len(cmd.Args) == 0 {
		cmd.Args = nil
	}
	return cmd, nil
}

// Arg returns the i-th argument or "".
func (c *Command) Arg(i int) string {
	if i < len(c.Args) {
		return c.Args[i]
	}
	return ""
}

func GetHelpText() string {
	return `*Commandes disponibles :*

*Planning :*
• ` + "`/planning today [modèle]`" + ` - Tâche du jour (modèle de l'abonnement par défaut)
• ` + "`/planning week [modèle]`" + ` - Tâches de la semaine

*Rappels quotidiens :*
• ` + "`/planning subscribe MODÈLE [HH:MM]`" + ` - Recevoir la tâche du jour dans ce canal (ex: Est 07:30)
• ` + "`/planning unsubscribe`" + ` - Supprimer le rappel de ce canal
• ` + "`/planning pause`" + ` - Suspendre les rappels
• ` + "`/planning resume`" + ` - Reprendre les rappels
• ` + "`/planning status`" + ` - Afficher la configuration du canal`
}
