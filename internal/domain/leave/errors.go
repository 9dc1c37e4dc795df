package leave

import "errors"

var ErrBalanceUnavailable = errors.New("leave balance unavailable")
