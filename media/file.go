package media

import (
	"context"
	"os"

	"github.com/donestate/estated/core"
)

// FileTransport reads attachment bytes from local files, for ingesting
// exports whose media sits next to the message dump. The attachment
// reference is the file path.
type FileTransport struct{}

var _ Transport = FileTransport{}

func (FileTransport) Fetch(ctx context.Context, att core.Attachment) ([]byte, error) {
	return os.ReadFile(att.Ref)
}
