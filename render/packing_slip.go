package render

const packingSlipTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        @page {
            size: Letter;
            margin: 14px;
        }
        body {
            font-family: Arial, sans-serif;
            font-size: 11px;
            color: black;
            margin: 0;
            padding: 14px;
        }
        .header {
            border-bottom: 2px solid black;
            padding-bottom: 5px;
            margin-bottom: 10px;
        }
        .header-top {
            display: flex;
            justify-content: space-between;
            width: 100%;
        }
        .logo-section { width: 25%; }
        .logo-section img { width: 120px; }
        .company-info {
            width: 50%;
            text-align: center;
        }
        .company-name { font-size: 24px; font-weight: bold; }
        .company-website { font-size: 12px; margin-top: 2px; }
        .company-address { font-size: 10px; margin-top: 2px; }
        .packing-list-title {
            font-size: 32px;
            font-weight: bold;
            font-style: italic;
            letter-spacing: 2px;
            margin-top: 5px;
        }
        .packing-info { width: 25%; text-align: right; }
        .barcode { font-size: 24px; font-weight: bold; margin-top: 5px; }
        .page-info { font-size: 11px; margin-top: 2px; }
        .meta-info {
            display: flex;
            justify-content: space-between;
            font-size: 10px;
            margin: 10px 0;
        }
        .customer-info-row {
            display: flex;
            justify-content: space-between;
            margin: 10px 0;
        }
        .customer-box {
            width: 48%;
            border: 1px solid black;
            padding: 8px;
            min-height: 70px;
            font-size: 10px;
        }
        .box-title { font-weight: bold; margin-bottom: 5px; }
        table {
            width: 100%;
            border-collapse: collapse;
            margin: 10px 0;
            font-size: 10px;
        }
        th, td {
            border: 1px solid black;
            padding: 4px;
            text-align: center;
        }
        th { font-weight: bold; }
        td.right { text-align: right; }
        td.center { text-align: center; }
        .totals {
            margin: 10px 0;
            font-size: 10px;
            font-weight: bold;
        }
        .footer {
            margin-top: 10px;
            font-size: 9px;
            text-align: justify;
            line-height: 1.3;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="header-top">
            <div class="logo-section">
                <img src="{{.Settings.LogoURL}}" alt="logo">
            </div>
            <div class="company-info">
                <div class="company-name">{{.Settings.CompanyName}}</div>
                <div class="company-website">{{.Settings.CompanyWebsite}}</div>
                <div class="company-address">{{.Settings.CompanyAddress}}</div>
                <div class="company-address">Tel: {{.Settings.CompanyPhone}}&nbsp;&nbsp;&nbsp;&nbsp;Fax:{{.Settings.CompanyFax}}</div>
                <div class="packing-list-title">Packing List</div>
            </div>
            <div class="packing-info">
                <div class="barcode">*{{.Order.OrderNumber}}*</div>
                <div class="page-info">Page 1 of 1</div>
            </div>
        </div>
    </div>

    <div class="meta-info">
        <div>
            <strong>Invoice No.:</strong> {{.Order.OrderNumber}}&nbsp;&nbsp;&nbsp;&nbsp;
            <strong>Terms:</strong> {{.Order.Terms}}
        </div>
        <div>
            <strong>Cases:</strong> {{blankInt .Order.TotalCase}}&nbsp;&nbsp;&nbsp;&nbsp;
            <strong>Date:</strong> {{.Order.ShipDate}}
        </div>
    </div>

    <div class="customer-info-row">
        <div class="customer-box">
            <div class="box-title">Sold To:</div>
            <div>Attn: {{.Order.RecipientName}}</div>
            <div><strong>{{.Order.RecipientCompany}}</strong></div>
            <div>{{.Order.Address1}}{{if .Order.Address2}} {{.Order.Address2}}{{end}}</div>
            <div>{{.Order.City}}, {{.Order.State}} {{.Order.PostalCode}}</div>
            <div><br></div>
            <div>Tel: {{.Order.Phone}}</div>
        </div>
        <div class="customer-box">
            <div class="box-title">Ship To Address:</div>
            <div>Attn: {{.Order.RecipientName}}</div>
            <div><strong>{{.Order.RecipientCompany}}</strong></div>
            <div>{{.Order.Address1}}{{if .Order.Address2}} {{.Order.Address2}}{{end}}</div>
            <div>{{.Order.City}}, {{.Order.State}} {{.Order.PostalCode}}, {{.Order.CountryCode}}</div>
            <div><br></div>
            <div>Tel:{{.Order.Phone}}</div>
        </div>
    </div>

    <table class="order-details">
        <thead>
            <tr>
                <th>Customer ID</th>
                <th>Customer P/O No.</th>
                <th>Order Date</th>
                <th>S/O No.</th>
                <th>Sales Rep.</th>
                <th>Ship Date</th>
                <th>Ship Via</th>
            </tr>
        </thead>
        <tbody>
            <tr>
                <td>{{.Order.CustomerID}}</td>
                <td>{{.Order.PONo}}</td>
                <td>{{.Order.SODate}}</td>
                <td>{{.Order.SONo}}</td>
                <td>{{.Order.SalesRep}}</td>
                <td>{{.Order.ShipDate}}</td>
                <td>{{.Order.ShipVia}}</td>
            </tr>
        </tbody>
    </table>

    <table class="items-table">
        <thead>
            <tr>
                <th style="width: 5%;">Line</th>
                <th style="width: 12%;">Item No.</th>
                <th style="width: 8%;">Ship Units</th>
                <th style="width: 5%;">Pack</th>
                <th style="width: 8%;">Loc</th>
                <th style="width: 42%;">Description</th>
                <th style="width: 8%;">ShipQty</th>
                <th style="width: 8%;">Weight</th>
                <th style="width: 8%;">Volume</th>
            </tr>
        </thead>
        <tbody>
            {{range .Order.LineItems}}
            <tr>
                <td class="center">{{.LineNumber}}</td>
                <td>{{.ItemNo}}</td>
                <td class="center">{{.OrderUnit}} {{.Unit}}</td>
                <td class="center">{{.Pack}}</td>
                <td class="center">{{.Loc}}</td>
                <td>{{.Description}}</td>
                <td class="right">{{.ShipQty}}</td>
                <td class="right">{{money2 .Weight}}</td>
                <td class="right">{{money2 .Volume}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="totals">
        <strong>Total:</strong> {{len .Order.LineItems}} Items&nbsp;&nbsp;&nbsp;&nbsp;
        Total BX:&nbsp;&nbsp;&nbsp;&nbsp;
        Unit PC:&nbsp;&nbsp;&nbsp;&nbsp;
        <strong>Total CASE:</strong> {{blankInt .Order.TotalCase}}&nbsp;&nbsp;&nbsp;&nbsp;
        <strong>Actual Cases:</strong> {{blankInt .Order.TotalCase}}&nbsp;&nbsp;&nbsp;&nbsp;
        {{blankInt .Order.TotalQty}}&nbsp;&nbsp;&nbsp;&nbsp;
        <strong>{{money2 .Order.TotalWT}}</strong>&nbsp;&nbsp;&nbsp;&nbsp;
        <strong>{{money2 .Order.Vol}}</strong>
    </div>

    <div class="footer">{{.Settings.PackingSlipFooter}}</div>
</body>
</html>
`
