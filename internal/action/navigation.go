package action

import (
	"context"
	"net/url"
	"strings"

	"github.com/mj1618/pcremote/internal/model"
)

// OpenURL hands an http(s) URL to the OS URL handler.
func (e *Executor) OpenURL(ctx context.Context, param string) (model.ActionResult, error) {
	const name = "BROWSER_OPEN_URL"
	raw := strings.TrimSpace(param)
	if raw == "" {
		return model.Failed("%s failed - missing URL", name), nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return model.Failed("%s failed - invalid URL %q", name, raw), nil
	}
	if err := e.launch.OpenURL(u.String()); err != nil {
		return model.ActionResult{}, err
	}
	return model.Executed("%s executed - %s", name, u.Host), nil
}
