package shell

import (
	"path"
	"strings"

	"github.com/josephlewis42/trsh/core/vos"
)

// DefaultPrompt shows the working directory.
const DefaultPrompt = `Tr \w> `

// ExpandPrompt replaces the escapes in template:
//
//	\w  working directory with $HOME abbreviated to ~
//	\W  last element of the working directory
//	\u  user name
//	\h  host name up to the first dot
//	\$  # for root, $ otherwise
func ExpandPrompt(template string, virtOS vos.VOS) string {
	pwd, _ := virtOS.Getwd()
	home, _ := virtOS.UserHomeDir()

	short := path.Base(pwd)
	if home != "" && pwd == home {
		short = "~"
	}

	host, _ := virtOS.Hostname()
	if i := strings.IndexByte(host, '.'); i > 0 {
		host = host[:i]
	}

	sigil := "$"
	if virtOS.Getuid() == 0 {
		sigil = "#"
	}

	return strings.NewReplacer(
		`\w`, abbreviateHome(pwd, home),
		`\W`, short,
		`\u`, virtOS.Username(),
		`\h`, host,
		`\$`, sigil,
	).Replace(template)
}

func abbreviateHome(pwd, home string) string {
	switch {
	case home == "" || home == "/":
		return pwd
	case pwd == home:
		return "~"
	case strings.HasPrefix(pwd, home+"/"):
		return "~" + strings.TrimPrefix(pwd, home)
	default:
		return pwd
	}
}
