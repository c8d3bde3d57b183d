package catalog

// instruments is the static reference table of tradeable instruments used
// for lookup and type suggestion. It is not market data.
var instruments = []Instrument{
	{ID: 1, Name: "Maxi Renda Fundo de Investimento Imobiliário", Ticker: "MXRF11", Type: "FII", Category: "Tijolo", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/max-renda--big.svg"},
	{ID: 2, Name: "CSHG Logística Fundo de Investimento Imobiliário", Ticker: "HGLG11", Type: "FII", Category: "Logística", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/cshg-logistica--big.svg"},
	{ID: 3, Name: "XP Malls Fundo de Investimento Imobiliário", Ticker: "XPML11", Type: "FII", Category: "Shopping", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/xp-malls--big.svg"},
	{ID: 4, Name: "Vinci Shopping Centers Fundo de Investimento Imobiliário", Ticker: "VISC11", Type: "FII", Category: "Shopping", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/vinci-shopping--big.svg"},
	{ID: 5, Name: "XP Log Fundo de Investimento Imobiliário", Ticker: "XPLG11", Type: "FII", Category: "Logística", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/xp-log--big.svg"},
	{ID: 6, Name: "Hedge Shopping Centers Fundo de Investimento Imobiliário", Ticker: "HGBS11", Type: "FII", Category: "Shopping", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/hedge-shopping--big.svg"},
	{ID: 7, Name: "BTG Pactual Logística Fundo de Investimento Imobiliário", Ticker: "BTLG11", Type: "FII", Category: "Logística", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/btg-pactual-logistica--big.svg"},
	{ID: 8, Name: "Kinea Rendimentos Imobiliários Fundo de Investimento Imobiliário", Ticker: "KNRI11", Type: "FII", Category: "Tijolo", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/kinea-rendimentos--big.svg"},
	{ID: 9, Name: "Votorantim Logística Fundo de Investimento Imobiliário", Ticker: "VTLT11", Type: "FII", Category: "Logística", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/votorantim-logistica--big.svg"},
	{ID: 10, Name: "CSHG Real Estate Fundo de Investimento Imobiliário", Ticker: "HGRE11", Type: "FII", Category: "Tijolo", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/cshg-real-estate--big.svg"},
	{ID: 11, Name: "Housi Fundo de Investimento Imobiliário", Ticker: "HOSI11", Type: "FII", Category: "Tijolo", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/housi--big.svg"},
	{ID: 12, Name: "RBR Rendimentos High Grade Fundo de Investimento Imobiliário", Ticker: "RBRR11", Type: "FII", Category: "Tijolo", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/rbr-rendimentos--big.svg"},
	{ID: 13, Name: "BTG Pactual Corporate Office Fundo de Investimento Imobiliário", Ticker: "BRCO11", Type: "FII", Category: "Escritórios", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/btg-pactual-corporate--big.svg"},
	{ID: 14, Name: "Fundo de Investimento Imobiliário FII RBR Desenvolvimento", Ticker: "RBRD11", Type: "FII", Category: "Desenvolvimento", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/rbr-desenvolvimento--big.svg"},
	{ID: 15, Name: "CSHG Recebíveis Imobiliários Fundo de Investimento Imobiliário", Ticker: "HGCR11", Type: "FII", Category: "Recebíveis", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/cshg-recebiveis--big.svg"},
	{ID: 16, Name: "Kinea Rendimentos Imobiliários II Fundo de Investimento Imobiliário", Ticker: "KNCR11", Type: "FII", Category: "Tijolo", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/kinea-rendimentos-ii--big.svg"},
	{ID: 17, Name: "Vinci Partners Recebíveis Imobiliários Fundo de Investimento Imobiliário", Ticker: "VCRR11", Type: "FII", Category: "Recebíveis", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/vinci-recebiveis--big.svg"},
	{ID: 18, Name: "BTG Pactual Shoppings Fundo de Investimento Imobiliário", Ticker: "BPML11", Type: "FII", Category: "Shopping", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/btg-pactual-shoppings--big.svg"},
	{ID: 19, Name: "XP Selection Fundo de Investimento Imobiliário", Ticker: "XPSF11", Type: "FII", Category: "Tijolo", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/xp-selection--big.svg"},
	{ID: 20, Name: "Hedge Realty Fundo de Investimento Imobiliário", Ticker: "HGRU11", Type: "FII", Category: "Tijolo", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/hedge-realty--big.svg"},
	{ID: 21, Name: "RBR Logística Fundo de Investimento Imobiliário", Ticker: "RBRL11", Type: "FII", Category: "Logística", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/rbr-logistica--big.svg"},
	{ID: 22, Name: "CSHG Imobiliário Fundo de Investimento Imobiliário", Ticker: "HGFF11", Type: "FII", Category: "Tijolo", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/cshg-imobiliario--big.svg"},
	{ID: 23, Name: "Kinea Renda Imobiliária Fundo de Investimento Imobiliário", Ticker: "KNIP11", Type: "FII", Category: "Tijolo", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/kinea-renda--big.svg"},
	{ID: 24, Name: "Vinci Partners Recebíveis Imobiliários II Fundo de Investimento Imobiliário", Ticker: "VCRI11", Type: "FII", Category: "Recebíveis", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/vinci-recebiveis-ii--big.svg"},
	{ID: 25, Name: "BTG Pactual Recebíveis Imobiliários Fundo de Investimento Imobiliário", Ticker: "BTRX11", Type: "FII", Category: "Recebíveis", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/btg-pactual-recebiveis--big.svg"},
	{ID: 26, Name: "XP Selection II Fundo de Investimento Imobiliário", Ticker: "XPIN11", Type: "FII", Category: "Tijolo", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/xp-selection-ii--big.svg"},
	{ID: 27, Name: "Hedge Office Fundo de Investimento Imobiliário", Ticker: "HFOF11", Type: "FII", Category: "Escritórios", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/hedge-office--big.svg"},
	{ID: 28, Name: "RBR Malls Fundo de Investimento Imobiliário", Ticker: "RBRS11", Type: "FII", Category: "Shopping", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/rbr-malls--big.svg"},
	{ID: 29, Name: "CSHG Office Fundo de Investimento Imobiliário", Ticker: "HGPO11", Type: "FII", Category: "Escritórios", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/cshg-office--big.svg"},
	{ID: 30, Name: "Kinea Shopping Centers Fundo de Investimento Imobiliário", Ticker: "KNSC11", Type: "FII", Category: "Shopping", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/kinea-shopping--big.svg"},
	{ID: 31, Name: "Petróleo Brasileiro S.A. - Petrobras", Ticker: "PETR4", Type: "AÇÃO", Category: "Energia", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/petrobras--big.svg"},
	{ID: 32, Name: "Vale S.A.", Ticker: "VALE3", Type: "AÇÃO", Category: "Mineração", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/vale--big.svg"},
	{ID: 33, Name: "Itaú Unibanco Holding S.A.", Ticker: "ITUB4", Type: "AÇÃO", Category: "Bancos", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/itau--big.svg"},
	{ID: 34, Name: "Banco Bradesco S.A.", Ticker: "BBDC4", Type: "AÇÃO", Category: "Bancos", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/bradesco--big.svg"},
	{ID: 35, Name: "Ambev S.A.", Ticker: "ABEV3", Type: "AÇÃO", Category: "Bebidas", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/ambev--big.svg"},
	{ID: 36, Name: "WEG S.A.", Ticker: "WEGE3", Type: "AÇÃO", Category: "Tecnologia", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/weg--big.svg"},
	{ID: 37, Name: "Magazine Luiza S.A.", Ticker: "MGLU3", Type: "AÇÃO", Category: "Varejo", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/magazine-luiza--big.svg"},
	{ID: 38, Name: "Localiza Rent a Car S.A.", Ticker: "RENT3", Type: "AÇÃO", Category: "Serviços", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/localiza--big.svg"},
	{ID: 39, Name: "Banco do Brasil S.A.", Ticker: "BBAS3", Type: "AÇÃO", Category: "Bancos", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/banco-do-brasil--big.svg"},
	{ID: 40, Name: "Banco Santander Brasil S.A.", Ticker: "SANB11", Type: "AÇÃO", Category: "Bancos", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/santander--big.svg"},
	{ID: 41, Name: "Eletrobras", Ticker: "ELET3", Type: "AÇÃO", Category: "Energia", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/eletrobras--big.svg"},
	{ID: 42, Name: "JBS S.A.", Ticker: "JBSS3", Type: "AÇÃO", Category: "Alimentos", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/jbs--big.svg"},
	{ID: 43, Name: "Raia Drogasil S.A.", Ticker: "RADL3", Type: "AÇÃO", Category: "Varejo", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/raia-drogasil--big.svg"},
	{ID: 45, Name: "Suzano S.A.", Ticker: "SUZB3", Type: "AÇÃO", Category: "Papel e Celulose", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/suzano--big.svg"},
	{ID: 46, Name: "Klabin S.A.", Ticker: "KLBN11", Type: "AÇÃO", Category: "Papel e Celulose", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/klabin--big.svg"},
	{ID: 47, Name: "Rumo S.A.", Ticker: "RAIL3", Type: "AÇÃO", Category: "Logística", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/rumo--big.svg"},
	{ID: 48, Name: "Cielo S.A.", Ticker: "CIEL3", Type: "AÇÃO", Category: "Tecnologia", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/cielo--big.svg"},
	{ID: 49, Name: "Gerdau S.A.", Ticker: "GGBR4", Type: "AÇÃO", Category: "Siderurgia", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/gerdau--big.svg"},
	{ID: 50, Name: "Usinas Siderúrgicas de Minas Gerais S.A.", Ticker: "USIM5", Type: "AÇÃO", Category: "Siderurgia", Country: "BR", ImageURL: "https://s3-symbol-logo.tradingview.com/usiminas--big.svg"},
	{ID: 51, Name: "iShares S&P 500", Ticker: "IVVB11", Type: "ETF", Category: "Internacional", Country: "BR", ImageURL: "https://logo.clearbit.com/blackrock.com"},
	{ID: 52, Name: "iShares Ibovespa", Ticker: "BOVA11", Type: "ETF", Category: "Índice", Country: "BR", ImageURL: "https://logo.clearbit.com/blackrock.com"},
	{ID: 53, Name: "iShares Small Cap", Ticker: "SMAL11", Type: "ETF", Category: "Índice", Country: "BR", ImageURL: "https://logo.clearbit.com/blackrock.com"},
	{ID: 54, Name: "iShares Dividendos", Ticker: "DIVO11", Type: "ETF", Category: "Dividendos", Country: "BR", ImageURL: "https://logo.clearbit.com/blackrock.com"},
	{ID: 55, Name: "iShares Índice de Consumo", Ticker: "ICON11", Type: "ETF", Category: "Setorial", Country: "BR", ImageURL: "https://logo.clearbit.com/blackrock.com"},
	{ID: 56, Name: "SPDR S&P 500 ETF Trust", Ticker: "SPY", Type: "ETF", Category: "Internacional", Country: "US", ImageURL: "https://logo.clearbit.com/spdrs.com"},
	{ID: 57, Name: "Invesco QQQ Trust", Ticker: "QQQ", Type: "ETF", Category: "Tecnologia", Country: "US", ImageURL: "https://logo.clearbit.com/invesco.com"},
	{ID: 58, Name: "Vanguard Total Stock Market ETF", Ticker: "VTI", Type: "ETF", Category: "Internacional", Country: "US", ImageURL: "https://logo.clearbit.com/vanguard.com"},
	{ID: 59, Name: "Vanguard S&P 500 ETF", Ticker: "VOO", Type: "ETF", Category: "Internacional", Country: "US", ImageURL: "https://logo.clearbit.com/vanguard.com"},
	{ID: 60, Name: "iShares Core MSCI EAFE ETF", Ticker: "IEFA", Type: "ETF", Category: "Internacional", Country: "US", ImageURL: "https://logo.clearbit.com/blackrock.com"},
	{ID: 61, Name: "Bitcoin", Ticker: "BTC", Type: "CRIPTO", Category: "Moeda Digital", Country: "US", ImageURL: "https://assets.coincap.io/assets/icons/btc@2x.png"},
	{ID: 62, Name: "Ethereum", Ticker: "ETH", Type: "CRIPTO", Category: "Moeda Digital", Country: "US", ImageURL: "https://assets.coincap.io/assets/icons/eth@2x.png"},
	{ID: 63, Name: "Solana", Ticker: "SOL", Type: "CRIPTO", Category: "Moeda Digital", Country: "US", ImageURL: "https://assets.coincap.io/assets/icons/sol@2x.png"},
	{ID: 64, Name: "Binance Coin", Ticker: "BNB", Type: "CRIPTO", Category: "Moeda Digital", Country: "US", ImageURL: "https://assets.coincap.io/assets/icons/bnb@2x.png"},
	{ID: 65, Name: "Cardano", Ticker: "ADA", Type: "CRIPTO", Category: "Moeda Digital", Country: "US", ImageURL: "https://assets.coincap.io/assets/icons/ada@2x.png"},
	{ID: 66, Name: "XRP", Ticker: "XRP", Type: "CRIPTO", Category: "Moeda Digital", Country: "US", ImageURL: "https://assets.coincap.io/assets/icons/xrp@2x.png"},
	{ID: 67, Name: "Polkadot", Ticker: "DOT", Type: "CRIPTO", Category: "Moeda Digital", Country: "US", ImageURL: "https://assets.coincap.io/assets/icons/dot@2x.png"},
	{ID: 68, Name: "Polygon", Ticker: "MATIC", Type: "CRIPTO", Category: "Moeda Digital", Country: "US", ImageURL: "https://assets.coincap.io/assets/icons/matic@2x.png"},
	{ID: 69, Name: "Avalanche", Ticker: "AVAX", Type: "CRIPTO", Category: "Moeda Digital", Country: "US", ImageURL: "https://assets.coincap.io/assets/icons/avax@2x.png"},
	{ID: 70, Name: "Chainlink", Ticker: "LINK", Type: "CRIPTO", Category: "Moeda Digital", Country: "US", ImageURL: "https://assets.coincap.io/assets/icons/link@2x.png"},
}
