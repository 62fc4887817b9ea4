package tabs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// withFences swaps ~~~ for real triple backticks so fixtures stay readable
// inside Go raw string literals.
func withFences(s string) string {
	return strings.ReplaceAll(s, "~~~", "```")
}

const twoItemBlock = `<Tabs groupId="lang">
<TabItem label="Go" default>

~~~go
fmt.Println("hi")
~~~

</TabItem>
<TabItem label="Rust">

~~~rust
println!("hi");
~~~

</TabItem>
</Tabs>`

const twoItemBlockHTML = `<div class="language-tabs" data-language-tabs-group="lang">
<div class="language-tabs-list" role="tablist" aria-label="Programming language tabs">
<button class="language-tabs-trigger is-active" type="button" role="tab" id="language-tabs-lang-button-go" aria-controls="language-tabs-lang-panel-go" aria-selected="true" data-language-tabs-value="go">Go</button>
<button class="language-tabs-trigger" type="button" role="tab" id="language-tabs-lang-button-rust" aria-controls="language-tabs-lang-panel-rust" aria-selected="false" data-language-tabs-value="rust">Rust</button>
</div>
<div class="language-tabs-panels">
<section class="language-tabs-panel is-active" role="tabpanel" id="language-tabs-lang-panel-go" aria-labelledby="language-tabs-lang-button-go" data-language-tabs-value="go">
<pre><code class="language-go">fmt.Println("hi")</code></pre>
</section>
<section class="language-tabs-panel" role="tabpanel" id="language-tabs-lang-panel-rust" aria-labelledby="language-tabs-lang-button-rust" data-language-tabs-value="rust">
<pre><code class="language-rust">println!("hi");</code></pre>
</section>
</div>
</div>`

func TestRewrite_TwoItemGroupEndToEnd(t *testing.T) {
	input := "# Usage\n\nIntro.\n\n" + withFences(twoItemBlock) + "\nOutro.\n"

	got := Rewrite(input)

	want := "# Usage\n\nIntro.\n\n" + "\n" + twoItemBlockHTML + "\n\n" + "\nOutro.\n"
	require.Equal(t, want, got)
}

func TestRewrite_TextWithoutBlocksUnchanged(t *testing.T) {
	input := "# Title\n\nPlain markdown with `inline code` and a <div>tag</div>.\n"
	require.Equal(t, input, Rewrite(input))
}

func TestRewrite_UnterminatedBlockCopiedVerbatim(t *testing.T) {
	input := withFences(`Before.

<Tabs groupId="lang">
<TabItem label="Go">

~~~go
x()
~~~

</TabItem>
no closing marker`)

	require.Equal(t, input, Rewrite(input))
}

func TestRewrite_OpenTagWithoutTerminatorCopiedVerbatim(t *testing.T) {
	input := "Before.\n\n<Tabs groupId=\"lang\""
	require.Equal(t, input, Rewrite(input))
}

func TestRewrite_EmptyBlockPassesThrough(t *testing.T) {
	input := "a\n<Tabs></Tabs>\nb\n"
	require.Equal(t, input, Rewrite(input))
}

func TestRewrite_ItemWithoutFenceInvalidatesWholeGroup(t *testing.T) {
	input := withFences(`<Tabs groupId="lang">
<TabItem label="Go">

~~~go
x()
~~~

</TabItem>
<TabItem label="Rust">
prose only, no code sample
</TabItem>
</Tabs>`)

	require.Equal(t, input, Rewrite(input))
}

func TestRewrite_MultipleBlocksProcessedIndependently(t *testing.T) {
	good := withFences(`<Tabs groupId="a">
<TabItem label="Go">
~~~go
x()
~~~
</TabItem>
</Tabs>`)
	bad := "<Tabs groupId=\"b\"></Tabs>"

	got := Rewrite("one\n" + good + "\ntwo\n" + bad + "\nthree\n")

	require.Contains(t, got, `data-language-tabs-group="a"`)
	// The malformed block survives byte for byte.
	require.Contains(t, got, bad)
	require.NotContains(t, got, `data-language-tabs-group="b"`)
	require.True(t, strings.HasSuffix(got, "\nthree\n"))
}

func TestRewrite_FirstCloseMarkerTerminatesBlock(t *testing.T) {
	// Nested groups are not understood: the first close marker wins and the
	// outer close marker is copied through as literal text.
	input := withFences(`<Tabs groupId="outer">
<TabItem label="Go">
~~~go
x()
~~~
</TabItem>
</Tabs>
</Tabs>`)

	got := Rewrite(input)

	require.Contains(t, got, `data-language-tabs-group="outer"`)
	require.True(t, strings.HasSuffix(got, "\n</Tabs>"))
}

func TestScan_ReportsDispositionPerBlock(t *testing.T) {
	good := withFences(`<Tabs groupId="a">
<TabItem label="Go">
~~~go
x()
~~~
</TabItem>
</Tabs>`)
	content := "pre " + good + " mid <Tabs></Tabs> post <Tabs unterminated"

	blocks := Scan(content)

	require.Len(t, blocks, 3)

	require.Equal(t, StatusRendered, blocks[0].Status)
	require.Equal(t, strings.Index(content, "<Tabs"), blocks[0].Start)
	require.Equal(t, good, content[blocks[0].Start:blocks[0].End])

	require.Equal(t, StatusPassedThrough, blocks[1].Status)
	require.Equal(t, "<Tabs></Tabs>", content[blocks[1].Start:blocks[1].End])

	require.Equal(t, StatusUnterminated, blocks[2].Status)
	require.Equal(t, len(content), blocks[2].End)
}

func TestScan_NoBlocks(t *testing.T) {
	require.Empty(t, Scan("nothing to see here\n"))
}
