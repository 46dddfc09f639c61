// Package probe performs an MCP handshake against a server and lists its
// tools. It is used to smoke-test an installed server artifact over stdio.
package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/config"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/launcher"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/messages"
)

// maxTools bounds tools/list pagination against servers that never stop
// returning a cursor.
const maxTools = 10000

// Tool is the summary of one advertised tool.
type Tool struct {
	Name        string
	Description string
}

// Result is what the server reported during the probe.
type Result struct {
	ServerName      string
	ServerVersion   string
	ProtocolVersion string
	Tools           []Tool
}

type mcpSessionInterface interface {
	InitializeResult() *mcp.InitializeResult
	ListTools(ctx context.Context, params *mcp.ListToolsParams) (*mcp.ListToolsResult, error)
	Close() error
}

type mcpClientInterface interface {
	Connect(ctx context.Context, transport mcp.Transport, opts *mcp.ClientSessionOptions) (mcpSessionInterface, error)
}

type realMCPClient struct {
	client *mcp.Client
}

func (c *realMCPClient) Connect(ctx context.Context, transport mcp.Transport, opts *mcp.ClientSessionOptions) (mcpSessionInterface, error) {
	session, err := c.client.Connect(ctx, transport, opts)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// NewMCPClientFunc creates the MCP client. Tests replace it.
var NewMCPClientFunc = func(impl *mcp.Implementation, opts *mcp.ClientOptions) mcpClientInterface {
	return &realMCPClient{client: mcp.NewClient(impl, opts)}
}

// Run connects over transport, which performs initialize, then pages
// through tools/list. The session is always closed.
func Run(ctx context.Context, transport mcp.Transport) (*Result, error) {
	client := NewMCPClientFunc(&mcp.Implementation{Name: "mcp-probe", Version: config.Version}, nil)
	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf(messages.ProbeConnectFailedFmt, err)
	}
	defer func() { _ = session.Close() }()

	result := &Result{}
	if init := session.InitializeResult(); init != nil {
		result.ProtocolVersion = init.ProtocolVersion
		if init.ServerInfo != nil {
			result.ServerName = init.ServerInfo.Name
			result.ServerVersion = init.ServerInfo.Version
		}
	}

	params := &mcp.ListToolsParams{}
	for {
		page, err := session.ListTools(ctx, params)
		if err != nil {
			return nil, fmt.Errorf(messages.ProbeListToolsFmt, err)
		}
		for _, tool := range page.Tools {
			if tool == nil {
				continue
			}
			result.Tools = append(result.Tools, Tool{Name: tool.Name, Description: tool.Description})
		}
		if page.NextCursor == "" {
			break
		}
		if len(result.Tools) > maxTools {
			return nil, errors.New(messages.ProbeTooManyPages)
		}
		params.Cursor = page.NextCursor
	}
	return result, nil
}

// CommandTransport runs spec as a stdio MCP server. The child's stderr goes
// to stderr; stdin and stdout carry the protocol.
func CommandTransport(ctx context.Context, spec launcher.Spec, stderr io.Writer) (mcp.Transport, error) {
	if spec.Command == "" {
		return nil, errors.New(messages.ProbeCommandRequired)
	}
	cmd := exec.CommandContext(ctx, spec.Command, spec.Args...)
	cmd.Env = spec.Env
	cmd.Stderr = stderr
	return &mcp.CommandTransport{Command: cmd}, nil
}

// Write prints res in a human-readable form.
func Write(w io.Writer, res *Result) {
	_, _ = fmt.Fprintf(w, messages.ProbeServerFmt, res.ServerName, res.ServerVersion)
	_, _ = fmt.Fprintf(w, messages.ProbeProtocolFmt, res.ProtocolVersion)
	_, _ = fmt.Fprintf(w, messages.ProbeToolCountFmt, len(res.Tools))
	for _, tool := range res.Tools {
		if tool.Description == "" {
			_, _ = fmt.Fprintf(w, messages.ProbeToolFmt, tool.Name)
			continue
		}
		_, _ = fmt.Fprintf(w, messages.ProbeToolDescFmt, tool.Name, tool.Description)
	}
	_, _ = fmt.Fprintln(w, messages.ProbeOK)
}
