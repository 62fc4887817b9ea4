package tabs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscapeText_CleanStringUnchanged(t *testing.T) {
	s := "plain text with 'quotes' and \"doubles\" but no markup"
	require.Equal(t, s, escapeText(s))
}

func TestEscapeText_EscapesMarkupOnly(t *testing.T) {
	require.Equal(t, "a &amp; b &lt;c&gt; \"d\"", escapeText(`a & b <c> "d"`))
}

func TestEscapeAttribute_EscapesQuotes(t *testing.T) {
	require.Equal(t, "&quot;x&#39;s&quot; &amp; &lt;y&gt;", escapeAttribute(`"x's" & <y>`))
}

func TestRenderGroup_CodeNewlinesEncoded(t *testing.T) {
	inner := "<TabItem label=\"Rust\">```rust\nlet x = 1;\nprintln!(\"{x}\");\n```</TabItem>"

	html, ok := renderGroup("<Tabs>", inner)
	require.True(t, ok)
	require.Contains(t, html, `<pre><code class="language-rust">let x = 1;&#10;println!("{x}");</code></pre>`)
}

func TestRenderGroup_LabelAndValueEscaped(t *testing.T) {
	inner := "<TabItem label=\"C&C <fast\" value=\"c&c\">```c\nmain();\n```</TabItem>"

	html, ok := renderGroup("<Tabs>", inner)
	require.True(t, ok)
	// Label is element text: & and < escaped.
	require.Contains(t, html, ">C&amp;C &lt;fast</button>")
	// Value lands in an attribute: quotes escaped too.
	require.Contains(t, html, `data-language-tabs-value="c&amp;c"`)
	// Ids are built from the sanitized value, not the raw one.
	require.Contains(t, html, `id="language-tabs-language-tabs-group-button-c-c"`)
	require.Contains(t, html, `id="language-tabs-language-tabs-group-panel-c-c"`)
}

func TestRenderGroup_ButtonAndPanelIdentifiersPair(t *testing.T) {
	inner := "<TabItem label=\"Go\">" + goFence + "</TabItem>" +
		"<TabItem label=\"Rust\">```rust\ny()\n```</TabItem>"

	html, ok := renderGroup(`<Tabs groupId="demo">`, inner)
	require.True(t, ok)
	require.Contains(t, html, `id="language-tabs-demo-button-go" aria-controls="language-tabs-demo-panel-go"`)
	require.Contains(t, html, `id="language-tabs-demo-panel-go" aria-labelledby="language-tabs-demo-button-go"`)
	require.Contains(t, html, `id="language-tabs-demo-button-rust" aria-controls="language-tabs-demo-panel-rust"`)
	require.Contains(t, html, `id="language-tabs-demo-panel-rust" aria-labelledby="language-tabs-demo-button-rust"`)
}

func TestRenderGroup_GroupIDSanitizedInOutput(t *testing.T) {
	html, ok := renderGroup(`<Tabs groupId="My Group!">`, "<TabItem label=\"Go\">"+goFence+"</TabItem>")
	require.True(t, ok)
	require.Contains(t, html, `data-language-tabs-group="my-group"`)
}
