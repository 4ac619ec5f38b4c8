package compose

import (
	"time"

	"github.com/google/uuid"
)

// Replacement is a literal search/replace rule attached to a template.
// Rules with Macros set run before macro substitution; the rest run after.
type Replacement struct {
	Search  string
	Replace string
	Macros  bool
}

// Template is a shared visual wrapper merged around composed content. The
// outer Document holds one #content# placeholder which receives the inner
// Content block; the Content block holds its own #content# placeholder
// which receives the message body.
type Template struct {
	CreatedAt    time.Time
	Name         string
	Document     string
	Content      string
	Replacements []Replacement
	ID           uuid.UUID
	Enabled      bool
}

// Ready reports whether the template may be used for sending.
func (t *Template) Ready() bool {
	return t.Enabled
}

// DefaultTemplate returns the built-in wrapper used when no stored template
// is ready: a minimal responsive HTML shell with a site header and an
// account footer.
func DefaultTemplate() *Template {
	return &Template{
		Enabled: true,
		Document: `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>#subject#</title>
  <style type="text/css">
    body {-webkit-text-size-adjust:none; -ms-text-size-adjust:none; margin:0; padding:0;}
    table td {border-collapse:collapse;}
    h1, h2, h3, h4, h5, h6 {color: black; line-height: 100%;}
    a, a:link {color:#2A5DB0; text-decoration: underline;}
    @media only screen and (max-device-width: 480px) {
      body[style] .table {width:320px;}
    }
  </style>
</head>
<body style="font-family: 'Helvetica Neue',Helvetica,Arial,sans-serif; color: #3A3A3A;">
#content#
</body>
</html>`,
		Content: `<div style="font-family: 'Helvetica Neue',Helvetica,Arial,sans-serif; color: #3A3A3A;">
  <table width="100%" cellpadding="0" cellspacing="0" bgcolor="#ffffff" align="center" border="0">
    <tr><td valign="top" style="color:#000; font-size: 20px; font-weight: bold; text-align: left; line-height: 17px; background-color: #C2E2FF;">
      <div align="left" style="background: #C2E2FF;">
        <table class="table" width="600" cellpadding="0" cellspacing="0" align="center" border="0"><tr><td valign="top" style="text-align: left;">
          <div align="left" style="padding-top: 7px; padding-bottom: 9px"><a href="#site_link#">#site_name#</a></div>
        </td></tr></table>
      </div>
    </td></tr>
  </table>
  <br />
  <table class="table" width="600" cellpadding="0" cellspacing="0" bgcolor="#ffffff" align="center" border="0">
    <tr><td valign="top" style="color:#3A3A3A">#content#</td></tr>
  </table>
  <br />
  <br />
  <table class="table" width="600" cellpadding="8" cellspacing="0" bgcolor="#D8D8D8" align="center" border="0">
    <tr><td valign="top" style="color:#3A3A3A; font-size:14px; background-color: #D8D8D8; text-align:center; line-height:20px">You received this email because you have an account at <a href="#site_link#">#site_name#</a>.</td></tr>
  </table>
</div>`,
	}
}
