package preview

// previewPage restyles its article whenever the hub sends a configuration.
const previewPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>readerstyle preview</title>
<style>
  body { margin: 0; transition: background-color .2s; }
  article { margin: 2rem auto; padding: 0 1rem; line-height: 1.5; }
</style>
</head>
<body>
<article id="article">
  <h1>readerstyle preview</h1>
  <p>Apply settings in the reader's side panel and this page follows them.</p>
</article>
<script>
  const article = document.getElementById("article");
  function apply(cfg) {
    article.style.fontFamily = cfg.fontFamilyOption.title;
    article.style.fontSize = cfg.fontSizeOption.title;
    article.style.color = cfg.fontColor.color;
    document.body.style.backgroundColor = cfg.backgroundColor.color;
    article.style.maxWidth = cfg.contentWidth.columns + "ch";
  }
  const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
  ws.onmessage = (ev) => {
    const msg = JSON.parse(ev.data);
    if (msg.type === "apply") apply(msg.config);
  };
</script>
</body>
</html>
`
